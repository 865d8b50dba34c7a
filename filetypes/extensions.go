package filetypes

import "strings"

// blockedExtensions are extensions associated with executables, dangerous scripts,
// installers, disk images, and shortcut/link files.
var blockedExtensions = map[string]struct{}{
	// executables and libraries
	"exe": {}, "dll": {}, "com": {}, "scr": {}, "pif": {}, "cpl": {},
	"jar": {}, "app": {}, "apk": {}, "bin": {}, "run": {},
	// scripts
	"bat": {}, "cmd": {}, "sh": {}, "bash": {}, "ps1": {}, "psm1": {},
	"vbs": {}, "vbe": {}, "wsf": {}, "reg": {},
	// installers and packages
	"msi": {}, "msix": {}, "deb": {}, "rpm": {}, "pkg": {}, "dmg": {},
	// disk images
	"iso": {}, "img": {}, "vhd": {}, "vhdx": {},
	// shortcut and link files
	"lnk": {}, "url": {}, "desktop": {}, "webloc": {},
}

// IsBlockedExtension reports whether a filename's extension is on the block-list.
// Only the LAST extension segment counts, case-insensitively, so "image.jpg.exe" is
// blocked while "safe.exe.txt" is not. Filenames with no extension, or ending in a
// bare dot, are never blocked.
func IsBlockedExtension(filename string) bool {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	_, blocked := blockedExtensions[strings.ToLower(filename[idx+1:])]
	return blocked
}
