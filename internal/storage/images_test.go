package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadFixture builds a real multipart.FileHeader the way gin hands it to
// handlers.
func uploadFixture(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("images", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["images"]
	require.Len(t, files, 1)
	return files[0]
}

func TestValidateImageAllowList(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.jpeg", "c.png", "d.gif", "e.PNG"} {
		fh := uploadFixture(t, name, []byte("img"))
		assert.NoError(t, ValidateImage(fh), name)
	}

	for _, name := range []string{"a.pdf", "b.svg", "c.txt", "noext"} {
		fh := uploadFixture(t, name, []byte("img"))
		assert.ErrorIs(t, ValidateImage(fh), ErrUnsupportedImageType, name)
	}
}

func TestValidateImageSizeCeiling(t *testing.T) {
	fh := uploadFixture(t, "big.jpg", bytes.Repeat([]byte("x"), MaxImageSize+1))
	assert.ErrorIs(t, ValidateImage(fh), ErrImageTooLarge)

	fh = uploadFixture(t, "ok.jpg", bytes.Repeat([]byte("x"), 1024))
	assert.NoError(t, ValidateImage(fh))
}

func TestSaveAndDeleteImage(t *testing.T) {
	oldRoot := Root
	Root = t.TempDir()
	t.Cleanup(func() { Root = oldRoot })

	fh := uploadFixture(t, "photo.JPG", []byte("fake image bytes"))
	relPath, err := SaveImage(fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(relPath, "activities/"))
	assert.True(t, strings.HasSuffix(relPath, ".jpg"))

	fullPath := filepath.Join(Root, filepath.FromSlash(relPath))
	content, err := os.ReadFile(fullPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), content)

	DeleteImage(relPath)
	_, err = os.Stat(fullPath)
	assert.True(t, os.IsNotExist(err))

	// Deleting twice must stay silent
	DeleteImage(relPath)
}

func TestSaveImageRejectsInvalidUpload(t *testing.T) {
	oldRoot := Root
	Root = t.TempDir()
	t.Cleanup(func() { Root = oldRoot })

	fh := uploadFixture(t, "doc.pdf", []byte("%PDF"))
	_, err := SaveImage(fh)
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
}
