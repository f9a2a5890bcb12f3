// Package storage persists uploaded activity images to the public file
// namespace served under /storage.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MaxImageSize is the per-file upload ceiling (2 MiB).
const MaxImageSize = 2 << 20

// Root is the directory backing the /storage URL namespace.
var Root = "./storage"

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var ErrUnsupportedImageType = errors.New("unsupported image type, allowed: jpeg, jpg, png, gif")
var ErrImageTooLarge = fmt.Errorf("image exceeds the %d byte limit", MaxImageSize)

// ValidateImage checks the upload against the type allow-list and size ceiling.
func ValidateImage(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return ErrUnsupportedImageType
	}
	if fh.Size > MaxImageSize {
		return ErrImageTooLarge
	}
	return nil
}

// SaveImage writes the upload under Root/activities with a generated name and
// returns the relative path to persist.
func SaveImage(fh *multipart.FileHeader) (string, error) {
	if err := ValidateImage(fh); err != nil {
		return "", err
	}

	relPath := filepath.Join("activities", uuid.New().String()+strings.ToLower(filepath.Ext(fh.Filename)))
	fullPath := filepath.Join(Root, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("could not create image directory: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("could not open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("could not create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("could not write image file: %w", err)
	}
	return filepath.ToSlash(relPath), nil
}

// DeleteImage removes a stored image. Missing files are not an error; other
// failures are logged and swallowed so record deletes never hinge on disk
// state.
func DeleteImage(relPath string) {
	fullPath := filepath.Join(Root, filepath.FromSlash(relPath))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("path", relPath).Warn("could not delete stored image")
	}
}
