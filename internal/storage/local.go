// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Local stores assets under <root>/uploads/... relative to the public web
// root, serving them at <baseURL>/<key>. Used when object storage is not
// configured, or for entities kept on the application host.
type Local struct {
	root    string // public web root on disk
	baseURL string // URL prefix mapped to root, e.g. "/static" or a full URL
}

// NewLocal creates a filesystem storage backend rooted at dir.
func NewLocal(dir, baseURL string) *Local {
	return &Local{
		root:    filepath.Clean(dir),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload writes the file under the key's path, creating directories as
// needed. The key must stay inside the root; traversal is rejected.
func (l *Local) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	path, err := l.safePath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("local mkdir %s: %w", key, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("local create %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		os.Remove(path)
		return fmt.Errorf("local write %s: %w", key, err)
	}
	return nil
}

// Remove unlinks files for the given keys. Errors (including files already
// gone) are swallowed after a log line — superseded files left on disk are
// an accepted leak, not a failure.
func (l *Local) Remove(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if key == "" {
			continue
		}
		path, err := l.safePath(key)
		if err != nil {
			slog.Warn("local remove skipped", "key", key, "error", err)
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			slog.Warn("local remove failed", "key", key, "error", err)
		}
	}
	return nil
}

// URL returns the public URL for a stored key.
func (l *Local) URL(key string) string {
	return l.baseURL + "/" + key
}

// safePath resolves a key to an absolute path inside the root.
func (l *Local) safePath(key string) (string, error) {
	path := filepath.Join(l.root, filepath.FromSlash(key))
	if !strings.HasPrefix(path, l.root+string(filepath.Separator)) {
		return "", fmt.Errorf("local storage: key %q escapes root", key)
	}
	return path, nil
}
