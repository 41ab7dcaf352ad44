// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package media

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/png"

	"github.com/digital-mary/catalog/internal/platform/apperr"
)

// maxUploadBytes caps a single uploaded image at 32 MiB.
const maxUploadBytes = 32 << 20

// thumbnailJPEGQuality balances thumbnail size against visible artifacts.
const thumbnailJPEGQuality = 85

// Storage writes image files under the configured media root. Database
// records store paths relative to the root; URL mapping happens at the
// static file mount.
type Storage struct {
	root string
}

func NewStorage(root string) *Storage {
	return &Storage{root: root}
}

// DecodeUpload reads an uploaded file into memory and decodes it.
// It returns the decoded image, the detected format name, and the raw bytes
// for storing the original untouched.
func DecodeUpload(reader io.Reader) (image.Image, string, []byte, error) {
	raw, err := io.ReadAll(io.LimitReader(reader, maxUploadBytes+1))
	if err != nil {
		return nil, "", nil, apperr.Unprocessable("Could not read uploaded file")
	}
	if len(raw) > maxUploadBytes {
		return nil, "", nil, apperr.Unprocessable("Uploaded file is too large")
	}

	decoded, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", nil, apperr.Unprocessable("Uploaded file is not a supported image")
	}
	return decoded, format, raw, nil
}

// SaveOriginal writes the raw upload to <root>/<dir>/<id>.<ext> and returns
// the root-relative path.
func (storage *Storage) SaveOriginal(dir, id, format string, raw []byte) (string, error) {
	relPath := filepath.Join(dir, fmt.Sprintf("%s.%s", id, extensionFor(format)))
	if err := storage.write(relPath, raw); err != nil {
		return "", err
	}
	return relPath, nil
}

// SaveThumbnail scales src into the given bounding box and writes it as a
// JPEG to <root>/<dir>/<id>.jpg, returning the root-relative path.
func (storage *Storage) SaveThumbnail(dir, id string, src image.Image, maxWidth, maxHeight int) (string, error) {
	scaled := Thumbnail(src, maxWidth, maxHeight)

	var buffer bytes.Buffer
	if err := jpeg.Encode(&buffer, scaled, &jpeg.Options{Quality: thumbnailJPEGQuality}); err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}

	relPath := filepath.Join(dir, id+".jpg")
	if err := storage.write(relPath, buffer.Bytes()); err != nil {
		return "", err
	}
	return relPath, nil
}

// Remove deletes a stored file. A missing file is not an error: the record
// is already gone or was never written.
func (storage *Storage) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(storage.root, relPath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (storage *Storage) write(relPath string, data []byte) error {
	fullPath := filepath.Join(storage.root, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create media dir: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return fmt.Errorf("write media file: %w", err)
	}
	return nil
}

// extensionFor maps a decoded format name to a file extension.
func extensionFor(format string) string {
	switch format {
	case "jpeg":
		return "jpg"
	case "png", "gif":
		return format
	default:
		return "bin"
	}
}
