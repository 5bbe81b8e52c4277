package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tokenguard/internal/cli/config"
	"github.com/leapstack-labs/tokenguard/internal/cli/output"
	"github.com/leapstack-labs/tokenguard/internal/validate"
	"github.com/leapstack-labs/tokenguard/pkg/source"
)

// defaultDebounce is the quiet period before a change triggers a rescan.
const defaultDebounce = 200 * time.Millisecond

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	ValidateOptions
	Debounce time.Duration
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}
	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Re-validate source files whenever they change",
		Long: `Validate the project once, then watch it and validate again after every
change to a script file. Stop with Ctrl+C.

Accepts the same filters as validate. New directories are picked up as they
are created; excluded directories are never watched.`,
		Example: `  # Watch the configured root
  tokenguard watch

  # Watch one directory with one line per violation
  tokenguard watch ./src --report detailed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runWatch(cmd, opts)
		},
	}

	addValidateFlags(cmd, &opts.ValidateOptions)
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", defaultDebounce, "Quiet period before a change triggers validation")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *WatchOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmdCtx := NewCommandContext(cmd, opts.Format)
	logger := cmdCtx.Logger

	settings, err := resolveValidateSettings(cmd, cmdCtx.Cfg, &opts.ValidateOptions)
	if err != nil {
		return err
	}
	v, err := newValidator(cmdCtx, settings, &opts.ValidateOptions)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	dirs, err := v.Dirs(ctx)
	if err != nil {
		return err
	}
	if dirs == nil {
		// Single file: watch its directory and filter events below
		dirs = []string{filepath.Dir(v.Root)}
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	logger.Debug("watching", "root", v.Root, "dirs", len(dirs))

	detailed := settings.report == config.ReportDetailed
	run := func() {
		report, err := runValidation(ctx, v, settings.threshold)
		if err != nil {
			logger.Error("validation failed", "error", err)
			cmdCtx.Renderer.Error(err.Error())
			return
		}
		if err := renderReport(cmdCtx.Renderer, report, detailed); err != nil {
			logger.Error("render failed", "error", err)
		}
	}

	run()
	if cmdCtx.Renderer.EffectiveMode() != output.ModeJSON {
		cmdCtx.Renderer.Println(cmdCtx.Renderer.Styles().Muted.Render("Watching for changes..."))
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	trigger := make(chan struct{}, 1)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(v, event) {
				continue
			}
			if event.Has(fsnotify.Create) && isWatchableDir(v, event.Name) {
				if err := watchDirRecursive(watcher, v, event.Name); err != nil {
					logger.Warn("failed to watch new directory", "dir", event.Name, "error", err)
				}
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := event.Name
			debounceTimer = time.AfterFunc(debounce, func() {
				logger.Debug("file changed, re-validating", "file", name)
				select {
				case trigger <- struct{}{}:
				default:
				}
			})

		case <-trigger:
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}

// relevantEvent reports whether event can change the validation result.
func relevantEvent(v *validate.Validator, event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if event.Has(fsnotify.Create) && isWatchableDir(v, event.Name) {
		return true
	}
	if !source.IsSupported(event.Name) {
		return false
	}
	if !isDirPath(v.Root) {
		return filepath.Clean(event.Name) == filepath.Clean(v.Root)
	}
	rel, err := filepath.Rel(v.Root, event.Name)
	if err != nil {
		return false
	}
	return !v.Excluded(rel)
}

func isWatchableDir(v *validate.Validator, p string) bool {
	if !isDirPath(p) {
		return false
	}
	rel, err := filepath.Rel(v.Root, p)
	if err != nil {
		return false
	}
	return !v.Excluded(filepath.ToSlash(rel) + "/_")
}

// watchDirRecursive adds a directory and all non-excluded subdirectories to
// the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, v *validate.Validator, dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if !isWatchableDir(v, p) {
			return filepath.SkipDir
		}
		return watcher.Add(p)
	})
}

func isDirPath(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
