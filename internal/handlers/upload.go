// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	// maxImageSize caps photo/logo/banner uploads (5 MB).
	maxImageSize = 5 << 20

	// maxDocumentSize caps certificate file uploads (10 MB).
	maxDocumentSize = 10 << 20

	// maxImagePixels caps decoded image dimensions to prevent memory bombs.
	// 10000x10000 = 100 million pixels, ~400 MB decoded in RGBA.
	maxImagePixels = 100_000_000
)

// allowedImageTypes are MIME types accepted for image uploads.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// allowedDocumentTypes extend image types with PDF for certificate files.
var allowedDocumentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

// UploadRules constrain what one resource accepts as its asset.
type UploadRules struct {
	MaxSize      int64
	AllowedTypes map[string]bool
	KeyPrefix    string // object key namespace, e.g. "testimonials"
}

// ImageRules returns upload rules for image-only assets.
func ImageRules(prefix string) UploadRules {
	return UploadRules{MaxSize: maxImageSize, AllowedTypes: allowedImageTypes, KeyPrefix: prefix}
}

// DocumentRules returns upload rules that also accept PDFs.
func DocumentRules(prefix string) UploadRules {
	return UploadRules{MaxSize: maxDocumentSize, AllowedTypes: allowedDocumentTypes, KeyPrefix: prefix}
}

// upload holds a validated file ready to be stored.
type upload struct {
	Key         string
	ContentType string
	Body        io.Reader
	Size        int64
}

// validateUpload sniffs and checks one multipart file against the rules and
// returns it positioned at the start with a generated object key.
func validateUpload(file multipart.File, header *multipart.FileHeader, rules UploadRules) (*upload, error) {
	if header.Size > rules.MaxSize {
		return nil, fmt.Errorf("file too large (max %d MB)", rules.MaxSize>>20)
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read file: %w", err)
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	// SVG detection: DetectContentType returns text/xml or application/xml for SVGs.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if !rules.AllowedTypes[contentType] {
		return nil, fmt.Errorf("file type %q is not allowed", contentType)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek file: %w", err)
	}

	// Raster images get a dimension check before they are ever decoded fully.
	if strings.HasPrefix(contentType, "image/") && contentType != "image/svg+xml" {
		if err := checkImageBounds(file); err != nil {
			return nil, err
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seek file: %w", err)
		}
	}

	key, err := generateKey(rules.KeyPrefix, header.Filename)
	if err != nil {
		return nil, err
	}

	return &upload{
		Key:         key,
		ContentType: contentType,
		Body:        file,
		Size:        header.Size,
	}, nil
}

// checkImageBounds reads only the image header and rejects images whose
// decoded pixel count would exceed maxImagePixels.
func checkImageBounds(r io.Reader) error {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return fmt.Errorf("unreadable image: %w", err)
	}
	if cfg.Width*cfg.Height > maxImagePixels {
		return fmt.Errorf("image dimensions too large (%dx%d)", cfg.Width, cfg.Height)
	}
	return nil
}

// generateKey builds a collision-free object key preserving the original
// file extension: <prefix>/<16 random hex bytes><ext>.
func generateKey(prefix, filename string) (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	return prefix + "/" + hex.EncodeToString(b) + ext, nil
}
