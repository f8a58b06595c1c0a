package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/imagedup/internal/imagedup"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// DefaultExcludes contains the default exclusion patterns.
//
//nolint:gochecknoglobals // Config constant
var DefaultExcludes = []string{`.*\.git/.*`, `.*node_modules/.*`}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var (
		options    imagedup.Options
		minSizeStr string
	)

	allowedOutputs := []string{"table", "json"}

	cmd := &cobra.Command{
		Use:   "imagedup [flags] [path]",
		Short: "Find duplicate image files and the disk space they waste",
		Long: heredoc.Doc(`
			imagedup scans a directory tree for image files, hashes their contents,
			and reports groups of files with identical content along with the disk
			space wasted by the redundant copies.

			The path argument defaults to your Downloads folder if not specified.

			Files are matched by extension (jpg, jpeg, png, gif, bmp, webp, tiff,
			tif, ico, svg); use --ext to add more. Unreadable files and directories
			are skipped and reported, never aborting the scan. Nothing is ever
			deleted or modified.
		`),
		Args:          cobra.MaximumNArgs(1),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if options.Workers < 0 {
				return errors.New("workers cannot be negative")
			}

			if len(args) > 0 {
				options.Path = args[0]
			} else {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("resolving home directory: %w", err)
				}

				options.Path = filepath.Join(home, "Downloads")
			}

			// Parse minSize string to bytes
			if minSizeStr != "" {
				size, err := humanize.ParseBytes(minSizeStr)
				if err != nil {
					return fmt.Errorf("invalid min-size: %w", err)
				}

				options.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
			}

			return logic(options)
		},
	}

	cmd.Flags().StringSliceVarP(
		&options.Extensions,
		"ext",
		"x",
		[]string{},
		"Extra file suffixes to treat as images (e.g., .heic,.avif)",
	)
	cmd.Flags().StringSliceVarP(&options.Excludes, "exclude", "e", DefaultExcludes, "Regex patterns to exclude")
	cmd.Flags().StringVar(&minSizeStr, "min-size", "0KB", "Minimum file size (e.g., 1KB)")
	cmd.Flags().IntVarP(&options.Workers, "workers", "w", 0, "Number of hashing workers (0=all CPUs)")
	cmd.Flags().StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	cmd.Flags().BoolVar(&options.Debug, "debug", false, "Enable debug output")

	cmd.Flags().SortFlags = false

	return cmd.Execute()
}
