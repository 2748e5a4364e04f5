package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pxl/internal/core/services"
	"pxl/pkg/ui"
)

var watchQuiet bool

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and auto-upload new images",
	Long: `Watch a directory for new image files and upload them as they
appear. Useful for screenshot folders.

Writes are debounced so half-written files are not picked up; files
that fail validation are skipped with a notice and watching continues.
The directory defaults to watch_dir from the config.

Examples:
  pxl watch ~/Pictures/Screenshots
  pxl watch --quiet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress per-file notifications")
}

// imageExts pre-filters watch events; the real validation happens in
// the upload pipeline.
var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".svg": true,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(getContext(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir := appConfig.WatchDir
	if len(args) == 1 {
		dir = args[0]
	}
	if dir == "" {
		return fmt.Errorf("no directory given and watch_dir is not configured")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if !watchQuiet {
		fmt.Println(ui.FormatInfo("Watching: " + dir))
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	uploader := services.NewUploader(fileService, appConfig.ClientSettings)
	debounce := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond

	var mu sync.Mutex
	pending := map[string]bool{}
	var debounceTimer *time.Timer

	flush := func() {
		mu.Lock()
		paths := make([]string, 0, len(pending))
		for p := range pending {
			paths = append(paths, p)
		}
		pending = map[string]bool{}
		mu.Unlock()

		if len(paths) == 0 {
			return
		}

		_, err := uploader.Run(ctx, paths, func(index, total int, result services.ItemResult) {
			if watchQuiet {
				return
			}
			switch result.State {
			case services.ItemUploaded:
				fmt.Println(ui.FormatSuccess(result.Name))
				fmt.Println("  " + ui.FormatLink(result.ShareURL))
			case services.ItemSkipped:
				fmt.Println(ui.FormatSkip(result.Name + " skipped: " + result.Reason))
			case services.ItemFailed:
				fmt.Println(ui.FormatError(result.Name + " failed: " + result.Reason))
			}
		})
		if err != nil && !watchQuiet {
			fmt.Println(ui.FormatError("Upload failed: " + err.Error()))
		}
	}

	enqueue := func(path string) {
		mu.Lock()
		pending[path] = true
		mu.Unlock()

		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		debounceTimer = time.AfterFunc(debounce, flush)
	}

	if err := watchLoop(ctx, watcher, enqueue); err != nil {
		return err
	}
	if !watchQuiet {
		fmt.Println()
		fmt.Println(ui.FormatMuted("Watch stopped"))
	}
	return nil
}

// watchLoop consumes watcher events until the context is cancelled or
// the watcher is closed. Interesting image files are handed to enqueue.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, enqueue func(string)) error {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !imageExts[strings.ToLower(filepath.Ext(event.Name))] {
				continue
			}

			// Filter out temporary/hidden files
			baseName := filepath.Base(event.Name)
			if strings.HasPrefix(baseName, ".") || strings.HasPrefix(baseName, "~") {
				continue
			}

			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				enqueue(event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))

		case <-ctx.Done():
			return nil
		}
	}
}
