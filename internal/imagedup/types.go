package imagedup

import "time"

// FileEntry describes a single image file discovered during enumeration.
type FileEntry struct {
	// Path is the absolute path to the file.
	Path string `json:"path"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// Ext is the lower-cased file extension, including the dot.
	Ext string `json:"ext"`
}

// Diagnostic records a file or directory skipped due to an I/O error.
type Diagnostic struct {
	// Path is the path that could not be read.
	Path string `json:"path"`
	// Reason is the underlying error message.
	Reason string `json:"reason"`
}

// DuplicateGroup is a set of two or more files sharing the same digest.
type DuplicateGroup struct {
	// Digest is the hex content hash shared by all members.
	Digest string `json:"digest"`
	// Size is the byte size of the first discovered member.
	Size int64 `json:"size"`
	// Wasted is Size times the number of redundant copies.
	Wasted int64 `json:"wasted"`
	// Files are the group members, sorted by path.
	Files []FileEntry `json:"files"`
}

// ScanResult holds the outcome of a single scan. It is a plain value and
// is not mutated after Run returns.
type ScanResult struct {
	// Root is the cleaned root path that was scanned.
	Root string `json:"root"`
	// FilesFound is the number of image files enumerated.
	FilesFound int `json:"files_found"`
	// FilesHashed is the number of files successfully hashed.
	FilesHashed int `json:"files_hashed"`
	// Groups contains the duplicate groups, ordered by first member path.
	Groups []DuplicateGroup `json:"groups"`
	// TotalWasted is the sum of Wasted across all groups.
	TotalWasted int64 `json:"total_wasted"`
	// Diagnostics lists paths skipped due to I/O errors.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// Duplicates returns the number of redundant copies across all groups.
func (r *ScanResult) Duplicates() int {
	var n int
	for _, g := range r.Groups {
		n += len(g.Files) - 1
	}

	return n
}

// Options configures a scan and CLI behavior.
type Options struct {
	// Path is the root directory to scan.
	Path string
	// Extensions are extra file suffixes to treat as images (e.g., .heic).
	Extensions []string
	// Excludes contains regex patterns to exclude.
	Excludes []string
	// MinSize is the minimum file size in bytes.
	MinSize int64
	// Workers is the number of concurrent hashing workers (0 = NumCPU).
	Workers int
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
}
