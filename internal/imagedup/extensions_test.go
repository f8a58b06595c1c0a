package imagedup

import "testing"

func TestImageExt(t *testing.T) {
	extra := extraExtensionSet([]string{"heic", ".AVIF", "'.raw'", ""})

	tests := []struct {
		path    string
		wantExt string
		want    bool
	}{
		{"photo.jpg", ".jpg", true},
		{"photo.JPEG", ".jpeg", true},
		{"archive/icon.ICO", ".ico", true},
		{"vector.svg", ".svg", true},
		{"notes.txt", ".txt", false},
		{"noext", "", false},
		{"movie.mp4", ".mp4", false},
		{"shot.heic", ".heic", true},
		{"shot.avif", ".avif", true},
		{"shot.raw", ".raw", true},
		{"jpg", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ext, ok := imageExt(tt.path, extra)
			if ext != tt.wantExt || ok != tt.want {
				t.Errorf("imageExt(%q) = (%q, %v), want (%q, %v)",
					tt.path, ext, ok, tt.wantExt, tt.want)
			}
		})
	}
}
