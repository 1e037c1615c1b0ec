// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage abstracts where uploaded assets live. Two backends are
// provided: S3-compatible object storage and a local filesystem directory
// under a public web root. Entities store only the key returned by Upload.
package storage

import (
	"context"
	"io"
	"strings"
)

// Storage is the minimal surface the resource controllers need.
// Remove is best-effort everywhere it is called: a missed blob is an
// accepted orphan, never a failed operation.
type Storage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Remove(ctx context.Context, keys ...string) error
	URL(key string) string
}

// iconPrefixes mark references that are icon-font class names, not files.
// They render directly in the UI and must never be resolved to a blob URL.
var iconPrefixes = []string{"fa-", "fab ", "fas ", "bi-", "devicon-"}

// IsIconClass reports whether ref is an icon-font class name.
func IsIconClass(ref string) bool {
	for _, p := range iconPrefixes {
		if strings.HasPrefix(ref, p) {
			return true
		}
	}
	return false
}

// ResolveURL turns a stored asset reference into something the UI can show:
// absolute URLs pass through unchanged, icon-font class names are returned
// as-is for direct rendering, and anything else is resolved by the backend.
// A nil backend resolves file keys to "" rather than panicking.
func ResolveURL(st Storage, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if IsIconClass(ref) {
		return ref
	}
	if st == nil {
		return ""
	}
	return st.URL(ref)
}
