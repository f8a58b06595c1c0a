package imagedup

import (
	"path/filepath"
	"strings"
)

// imageExtensions is the fixed set of extensions treated as images.
//
//nolint:gochecknoglobals // Config constant
var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".webp": {},
	".tiff": {},
	".tif":  {},
	".ico":  {},
	".svg":  {},
}

// extraExtensionSet normalizes user-supplied extensions into a lookup set.
// Entries are lower-cased and get a leading dot if missing.
func extraExtensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))

	for _, ext := range extensions {
		ext = strings.ToLower(strings.Trim(ext, "'\""))
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		set[ext] = struct{}{}
	}

	return set
}

// imageExt returns the lower-cased extension of path and whether it is a
// member of the image allow-list or the extra set.
func imageExt(path string, extra map[string]struct{}) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))

	if _, ok := imageExtensions[ext]; ok {
		return ext, true
	}

	if _, ok := extra[ext]; ok {
		return ext, true
	}

	return ext, false
}
