package cli

import (
	"context"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/idelchi/imagedup/internal/imagedup"
)

func logic(options imagedup.Options) error {
	enableProgress := strings.ToLower(options.Output) != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Hashing progress bar; the total is known once enumeration finishes,
	// so the bar is created lazily on the first callback.
	var (
		bar      *progressbar.ProgressBar
		progress func(done, total int64)
	)

	if enableProgress {
		progress = func(done, total int64) {
			if bar == nil {
				bar = progressbar.NewOptions64(total,
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionSetDescription("Hashing files..."),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}

			//nolint:errcheck // Progress display only
			bar.Set64(done)
		}
	}

	result, err := imagedup.Run(ctx, options, progress)

	// Clear the status line
	if bar != nil {
		//nolint:errcheck // Progress display only
		bar.Finish()
	}

	if err != nil {
		return err
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(result, os.Stdout)
	default:
		return PrintTable(result, os.Stdout)
	}
}
