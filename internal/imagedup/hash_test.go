package imagedup

import (
	"bytes"
	"crypto/md5" //nolint:gosec // Matching the production digest
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
)

func TestHashFile(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{
			name:    "empty file",
			content: nil,
			want:    "d41d8cd98f00b204e9800998ecf8427e",
		},
		{
			name:    "single byte",
			content: []byte("X"),
			want:    "02129bb861061d1a052c592e2dc6b383",
		},
		{
			name:    "spans multiple chunks",
			content: bytes.Repeat([]byte("abcdefgh"), 3*hashChunkSize/8),
		},
		{
			name:    "just over one chunk",
			content: bytes.Repeat([]byte{0x42}, hashChunkSize+1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "file.bin")
			if err := os.WriteFile(path, tt.content, 0o644); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}

			got, err := hashFile(path)
			if err != nil {
				t.Fatalf("hashFile failed: %v", err)
			}

			want := tt.want
			if want == "" {
				sum := md5.Sum(tt.content) //nolint:gosec // Matching the production digest
				want = hex.EncodeToString(sum[:])
			}

			if got != want {
				t.Errorf("digest = %s, want %s", got, want)
			}
		})
	}
}

func TestHashFileDeterministic(t *testing.T) {
	dir := t.TempDir()
	content := []byte("same content, different names")

	pathA := filepath.Join(dir, "a.jpg")
	pathB := filepath.Join(dir, "nested-name.png")

	for _, p := range []string{pathA, pathB} {
		if err := os.WriteFile(p, content, 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
	}

	digestA, err := hashFile(pathA)
	if err != nil {
		t.Fatalf("hashFile failed: %v", err)
	}

	digestB, err := hashFile(pathB)
	if err != nil {
		t.Fatalf("hashFile failed: %v", err)
	}

	if digestA != digestB {
		t.Errorf("identical content produced different digests: %s vs %s", digestA, digestB)
	}
}

func TestHashFileMissing(t *testing.T) {
	if _, err := hashFile(filepath.Join(t.TempDir(), "nope.jpg")); err == nil {
		t.Error("expected error for missing file")
	}
}
