package imagedup

import (
	"sort"
	"sync"
)

// collector aggregates enumeration and hashing results using a mutex.
// Enumeration entries arrive from concurrent fastwalk callbacks; hash
// results are funneled through a single aggregating loop.
type collector struct {
	mu          sync.Mutex // Protect concurrent access
	entries     []FileEntry
	groups      map[string][]FileEntry
	diagnostics []Diagnostic
	hashed      int
}

// newCollector creates an empty collector.
func newCollector() *collector {
	return &collector{
		groups: make(map[string][]FileEntry),
	}
}

// addEntry records an enumerated image file. This operation is protected by
// a mutex since fastwalk calls the walk callback from multiple goroutines
// concurrently.
func (c *collector) addEntry(entry FileEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = append(c.entries, entry)
}

// add records a successfully hashed file under its digest.
func (c *collector) add(entry FileEntry, digest string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hashed++
	c.groups[digest] = append(c.groups[digest], entry)
}

// addDiagnostic records a path skipped due to an I/O error.
func (c *collector) addDiagnostic(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.diagnostics = append(c.diagnostics, Diagnostic{Path: path, Reason: err.Error()})
}

// snapshot returns the enumerated entries collected so far.
func (c *collector) snapshot() []FileEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries
}

// finalize produces the ScanResult from the collected data. Only digests
// with two or more files survive. Within a group, members are sorted by
// path for presentation; the group's representative size is the byte size
// of the first discovered member and is not re-verified against the rest.
// Groups are ordered by the path of their first member, so the result is
// identical regardless of hash completion order.
func (c *collector) finalize(root string) *ScanResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := &ScanResult{
		Root:        root,
		FilesFound:  len(c.entries),
		FilesHashed: c.hashed,
		Diagnostics: c.diagnostics,
	}

	for digest, files := range c.groups {
		if len(files) < 2 {
			continue
		}

		size := files[0].Size

		sorted := make([]FileEntry, len(files))
		copy(sorted, files)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Path < sorted[j].Path
		})

		wasted := size * int64(len(sorted)-1)

		result.Groups = append(result.Groups, DuplicateGroup{
			Digest: digest,
			Size:   size,
			Wasted: wasted,
			Files:  sorted,
		})
		result.TotalWasted += wasted
	}

	sort.Slice(result.Groups, func(i, j int) bool {
		return result.Groups[i].Files[0].Path < result.Groups[j].Files[0].Path
	})

	return result
}
