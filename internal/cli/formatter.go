package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/idelchi/imagedup/internal/imagedup"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	// digestPreview is the number of digest characters shown per group.
	digestPreview = 16
)

//nolint:gochecknoglobals // Shared formatter styles
var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen)
)

// PrintJSON outputs the scan result in JSON format.
func PrintJSON(result *imagedup.ScanResult, writer io.Writer) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the scan result in human-readable table format.
func PrintTable(result *imagedup.ScanResult, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	if len(result.Groups) == 0 {
		fmt.Fprintf(w, "No duplicate images found in '%s' (%d files checked).\n",
			result.Root, result.FilesHashed)

		printDiagnostics(w, result)
		fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed)

		return w.Flush()
	}

	bold.Fprintf(w, "Found %d duplicates in %d groups:\n", result.Duplicates(), len(result.Groups))

	for i, group := range result.Groups {
		bold.Fprintf(w, "\nGroup %d:\t%d copies (%s each)\n",
			i+1, len(group.Files), humanize.IBytes(uint64(group.Size))) //nolint:gosec // Size is never negative
		fmt.Fprintf(w, "Wasted:\t%s\n", humanize.IBytes(uint64(group.Wasted))) //nolint:gosec // Wasted is never negative
		fmt.Fprintf(w, "Hash:\t%s...\n", group.Digest[:min(digestPreview, len(group.Digest))])

		for j, file := range group.Files {
			marker := " "
			if j == 0 {
				marker = "*"
			}

			fmt.Fprintf(w, "  %s %s\n", marker, file.Path)
		}
	}

	// Stats summary
	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Images scanned:\t%d\n", result.FilesFound)
	fmt.Fprintf(w, "Duplicate groups:\t%d\n", len(result.Groups))
	fmt.Fprintf(w, "Duplicates:\t%d\n", result.Duplicates())

	green.Fprintf(w, "Total wasted space:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(result.TotalWasted)), result.TotalWasted) //nolint:gosec // Total is never negative

	printDiagnostics(w, result)

	fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed)

	return w.Flush()
}

// printDiagnostics lists paths skipped due to I/O errors, if any.
func printDiagnostics(w io.Writer, result *imagedup.ScanResult) {
	if len(result.Diagnostics) == 0 {
		return
	}

	fmt.Fprintf(w, "\nSkipped (%d):\t\t\n", len(result.Diagnostics))

	for _, diag := range result.Diagnostics {
		fmt.Fprintf(w, "  %s:\t%s\n", diag.Path, diag.Reason)
	}
}
