package imagedup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// Run scans the directory tree at opt.Path for duplicate image files and
// returns the aggregated result.
//
// The scan runs in two phases: enumeration collects every regular file
// whose extension is in the image allow-list (plus opt.Extensions), then a
// pool of opt.Workers goroutines hashes the collected files and results are
// grouped by digest. Only a missing or non-directory root is fatal; every
// other I/O error is recorded as a diagnostic on the result and the scan
// continues.
//
// The scan can be cancelled via ctx, in which case partial results are
// discarded and the context error is returned. Hashing progress is reported
// to progress if provided.
func Run(ctx context.Context, opt Options, progress func(done, total int64)) (*ScanResult, error) {
	log := logger{enabled: opt.Debug}

	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opt.Path = filepath.Clean(opt.Path)

	// validate path exists and is accessible
	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	excludeRegexes := make([]*regexp.Regexp, 0, len(opt.Excludes))

	for _, p := range opt.Excludes {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		excludeRegexes = append(excludeRegexes, re)
	}

	log.printf("\n")
	log.printf("[debug]: extra extensions:\n")

	for ext := range extraExtensionSet(opt.Extensions) {
		log.printf("[debug]:   - %s\n", ext)
	}

	log.printf("[debug]: exclude regexes:\n")

	for _, re := range excludeRegexes {
		log.printf("[debug]:   - %s\n", re.String())
	}

	start := time.Now()

	// Create child context so worker cleanup follows cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	collector := newCollector()

	if err := enumerate(ctx, opt, excludeRegexes, collector, log); err != nil {
		return nil, fmt.Errorf("walking %q: %w", opt.Path, err)
	}

	entries := collector.snapshot()
	log.printf("[debug]: enumerated %d image files\n", len(entries))

	hashAll(ctx, entries, opt.Workers, collector, progress)

	// Partial results are never surfaced
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := collector.finalize(opt.Path)
	result.Elapsed = time.Since(start)

	return result, nil
}
