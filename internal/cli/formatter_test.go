package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/idelchi/imagedup/internal/imagedup"
)

func sampleResult() *imagedup.ScanResult {
	return &imagedup.ScanResult{
		Root:        "/pics",
		FilesFound:  5,
		FilesHashed: 4,
		Groups: []imagedup.DuplicateGroup{
			{
				Digest: "02129bb861061d1a052c592e2dc6b383",
				Size:   2048,
				Wasted: 2048,
				Files: []imagedup.FileEntry{
					{Path: "/pics/a.jpg", Size: 2048, Ext: ".jpg"},
					{Path: "/pics/sub/b.jpg", Size: 2048, Ext: ".jpg"},
				},
			},
		},
		TotalWasted: 2048,
		Diagnostics: []imagedup.Diagnostic{
			{Path: "/pics/locked.png", Reason: "permission denied"},
		},
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer

	if err := PrintTable(sampleResult(), &buf); err != nil {
		t.Fatalf("PrintTable failed: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"Found 1 duplicates in 1 groups",
		"2 copies",
		"/pics/a.jpg",
		"/pics/sub/b.jpg",
		"02129bb861061d1a...", // digest preview
		"Total wasted space",
		"2.0 KiB",
		"/pics/locked.png",
		"permission denied",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	// First member is marked as the copy to keep.
	if !strings.Contains(out, "* /pics/a.jpg") {
		t.Errorf("first member not marked:\n%s", out)
	}
}

func TestPrintTableNoDuplicates(t *testing.T) {
	var buf bytes.Buffer

	result := &imagedup.ScanResult{Root: "/pics", FilesFound: 3, FilesHashed: 3}

	if err := PrintTable(result, &buf); err != nil {
		t.Fatalf("PrintTable failed: %v", err)
	}

	if !strings.Contains(buf.String(), "No duplicate images found") {
		t.Errorf("missing no-duplicates message:\n%s", buf.String())
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer

	if err := PrintJSON(sampleResult(), &buf); err != nil {
		t.Fatalf("PrintJSON failed: %v", err)
	}

	var decoded imagedup.ScanResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.TotalWasted != 2048 {
		t.Errorf("total_wasted = %d, want 2048", decoded.TotalWasted)
	}

	if len(decoded.Groups) != 1 || len(decoded.Groups[0].Files) != 2 {
		t.Errorf("groups not round-tripped: %+v", decoded.Groups)
	}

	if len(decoded.Diagnostics) != 1 {
		t.Errorf("diagnostics not round-tripped: %+v", decoded.Diagnostics)
	}
}
