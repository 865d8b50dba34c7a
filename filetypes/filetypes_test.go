package filetypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedMimeType(t *testing.T) {
	allowed := []string{
		"image/png",
		"image/svg+xml",
		"text/html",
		"text/css",
		"text/html; charset=utf-8", // parameters pass via prefix containment
		"font/woff2",
		"video/mp4",
		"audio/mpeg",
		"application/json",
		"application/javascript",
		"application/wasm",
		"application/manifest+json",
	}
	for _, m := range allowed {
		assert.True(t, IsAllowedMimeType(m), "%q should be allowed", m)
	}

	rejected := []string{
		"IMAGE/PNG", // matching is case-sensitive
		"Image/Png",
		"",
		"png",
		"application",
		"application/x-msdownload",
		"application/octet-stream",
		"application/json; charset=utf-8", // exact entries get no parameter tolerance
		"multipart/form-data",
	}
	for _, m := range rejected {
		assert.False(t, IsAllowedMimeType(m), "%q should be rejected", m)
	}
}

func TestIsBlockedExtension(t *testing.T) {
	blocked := []string{
		"virus.EXE",
		"setup.msi",
		"image.jpg.exe", // judged on the last segment
		"script.sh",
		"payload.Ps1",
		"archive.dmg",
		"shortcut.lnk",
		"bundle.app",
	}
	for _, name := range blocked {
		assert.True(t, IsBlockedExtension(name), "%q should be blocked", name)
	}

	notBlocked := []string{
		"safe.exe.txt", // judged on the last segment
		"README",
		".gitignore",
		"index.html",
		"app.js",
		"photo.jpg",
		"trailing.",
		"",
		"noext",
	}
	for _, name := range notBlocked {
		assert.False(t, IsBlockedExtension(name), "%q should not be blocked", name)
	}
}
