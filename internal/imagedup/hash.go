package imagedup

import (
	"context"
	"crypto/md5" //nolint:gosec // Content fingerprint, not a security boundary
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
)

// hashChunkSize is the read block size used when hashing file contents.
const hashChunkSize = 8 * 1024

// hashFile computes the hex MD5 digest of the file at path, reading it in
// hashChunkSize blocks. Identical byte content always yields an identical
// digest; an empty file yields the digest of empty input.
func hashFile(path string) (digest string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening file: %w", err)
	}
	defer func() { err = errors.Join(err, file.Close()) }()

	hash := md5.New() //nolint:gosec // Content fingerprint, not a security boundary
	buf := make([]byte, hashChunkSize)

	for {
		n, readErr := file.Read(buf)
		if n > 0 {
			hash.Write(buf[:n])
		}

		if readErr == io.EOF {
			break
		}

		if readErr != nil {
			return "", fmt.Errorf("reading file: %w", readErr)
		}
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// hashResult carries one file's hashing outcome from a worker back to the
// aggregating loop.
type hashResult struct {
	entry  FileEntry
	digest string
	err    error
}

// hashAll fans entries out to a pool of hashing workers and funnels results
// back to a single loop feeding the collector. A failing file is recorded as
// a diagnostic and never cancels sibling hash operations. The progress
// callback, if set, observes a monotonically increasing completion count.
//
// Cancelling ctx stops feeding new files; in-flight hashes drain before
// hashAll returns.
func hashAll(
	ctx context.Context,
	entries []FileEntry,
	workers int,
	c *collector,
	progress func(done, total int64),
) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	fileCh := make(chan FileEntry)
	resultCh := make(chan hashResult)

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for entry := range fileCh {
				digest, err := hashFile(entry.Path)
				resultCh <- hashResult{entry: entry, digest: digest, err: err}
			}
		}()
	}

	go func() {
		defer close(fileCh)

		for _, entry := range entries {
			select {
			case fileCh <- entry:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var done int64

	total := int64(len(entries))

	for res := range resultCh {
		done++

		if res.err != nil {
			c.addDiagnostic(res.entry.Path, res.err)
		} else {
			c.add(res.entry, res.digest)
		}

		if progress != nil {
			progress(done, total)
		}
	}
}
