// Package filetypes classifies uploaded files as allowed or blocked, independently by
// declared MIME type and by filename extension. Both checks must pass for a file to be
// eligible for upload; the surrounding upload pipeline owns combining them.
package filetypes

import "strings"

// allowedMimePrefixes are category prefixes: any subtype under them is allowed. A MIME
// string carrying parameters ("text/html; charset=utf-8") passes through the same
// prefix containment, with no explicit parameter stripping.
var allowedMimePrefixes = []string{
	"image/",
	"text/",
	"font/",
	"audio/",
	"video/",
}

// allowedMimeTypes are the exact application subtypes a static site legitimately
// ships. Anything else under application/ is rejected.
var allowedMimeTypes = map[string]struct{}{
	"application/json":          {},
	"application/ld+json":       {},
	"application/manifest+json": {},
	"application/javascript":    {},
	"application/xml":           {},
	"application/xhtml+xml":     {},
	"application/rss+xml":       {},
	"application/atom+xml":      {},
	"application/pdf":           {},
	"application/wasm":          {},
	"application/zip":           {},
	"application/gzip":          {},
}

// IsAllowedMimeType reports whether a declared MIME type is on the upload allow-list:
// an exact match against a listed entry, or a prefix match against a listed category
// prefix. Matching is case-sensitive; uppercase input is rejected even when its
// lowercase form would match. Empty and non-"type/subtype" strings never match.
func IsAllowedMimeType(mimeType string) bool {
	if mimeType == "" {
		return false
	}
	if _, ok := allowedMimeTypes[mimeType]; ok {
		return true
	}
	for _, prefix := range allowedMimePrefixes {
		if strings.HasPrefix(mimeType, prefix) {
			return true
		}
	}
	return false
}
