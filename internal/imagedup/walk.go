package imagedup

import (
	"context"
	"io/fs"
	"path/filepath"
	"regexp"

	"github.com/charlievieth/fastwalk"
)

// shouldExcludeByPattern checks if path matches any exclusion regex.
func shouldExcludeByPattern(path string, patterns []*regexp.Regexp) *regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}

	fPath := filepath.ToSlash(path)

	for _, re := range patterns {
		if re.MatchString(fPath) {
			return re
		}
	}

	return nil
}

// enumerate walks the tree at opt.Path and records every regular file with
// an image extension into the collector. Unreadable directories and files
// become diagnostics; they never abort the walk. Symlinked directories are
// not followed, to avoid cycles.
//
//nolint:varnamelen // c is idiomatic for collector
func enumerate(
	ctx context.Context,
	opt Options,
	excludes []*regexp.Regexp,
	c *collector,
	log logger,
) error {
	extra := extraExtensionSet(opt.Extensions)

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	return fastwalk.Walk(conf, opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.printf("[debug]: error accessing path %s: %v\n", path, err)
			c.addDiagnostic(path, err)

			return nil // Skip unreadable subtrees, keep walking
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if matchedPattern := shouldExcludeByPattern(path, excludes); matchedPattern != nil {
			if d.IsDir() {
				log.printf("[debug]: excluding directory: %s\n", path)
				log.printf("	 matched regex: %s\n", matchedPattern.String())

				return filepath.SkipDir
			}

			log.printf("[debug]: excluding file: %s\n", path)
			log.printf("	 matched regex: %s\n", matchedPattern.String())

			return nil
		}

		if d.IsDir() {
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		ext, isImage := imageExt(path, extra)
		if !isImage {
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			c.addDiagnostic(path, err)

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		if fileInfo.Size() < opt.MinSize {
			log.printf("[debug]: skipping file (below min size): %s\n", path)

			return nil
		}

		absPath, absErr := filepath.Abs(path)
		if absErr != nil {
			absPath = path
		}

		c.addEntry(FileEntry{Path: absPath, Size: fileInfo.Size(), Ext: ext})

		return nil
	})
}
