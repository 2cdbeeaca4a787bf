package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/rgen/pkg/generator"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate accessors when the input changes",
	Long: `Generate once, then watch the input file and regenerate whenever it
changes. Bursts of events are collapsed with a debounce delay.

A failed regeneration is reported and leaves the previous output in place.

Examples:
  rgen watch -i Router.swift
  rgen watch -i Router.swift --debounce 250ms`,
	Run: runWatch,
}

func init() {
	addInputFlags(watchCmd)
	watchCmd.Flags().StringP("output", "o", "", "Output file (default: Router.Generate.swift next to the input)")
	watchCmd.Flags().StringP("template", "t", "", "Template name (default: built-in Swift accessors)")
	watchCmd.Flags().StringSlice("template-dir", nil, "Template search directories")
	watchCmd.Flags().String("emitter", "", "Emitter: template or builder")
	watchCmd.Flags().Duration("debounce", 0, "Delay before regenerating after a change (default: 100ms)")
}

func runWatch(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("invalid configuration", err)
	}
	logger := newLogger()
	gc := cfg.GeneratorConfig()

	regenerate := func() {
		timestamp := time.Now().Format("15:04:05")
		result, err := generator.Generate(gc)
		if err != nil {
			logger.Error("regeneration failed", "input", gc.Input, "error", err)
			if jsonOutput {
				printJSON(WatchEvent{Time: timestamp, Status: "error", Error: err.Error()})
			} else {
				fmt.Printf("  [%s] %s %v\n", timestamp, red("✗"), err)
			}
			return
		}
		logger.Debug("regenerated", "output", result.Output, "cases", result.Cases(), "bytes", result.Bytes)
		if jsonOutput {
			printJSON(WatchEvent{Time: timestamp, Status: "ok", Output: result.Output, Cases: result.Cases()})
			return
		}
		for _, c := range result.Conflicts {
			fmt.Printf("  [%s] %s %s\n", timestamp, yellow("Warning:"), c.Message)
		}
		fmt.Printf("  [%s] %s %s (%d cases)\n", timestamp, green("✓"), result.Output, result.Cases())
	}

	if !jsonOutput {
		fmt.Printf("\n  %s Watch\n\n", cyan("rgen"))
	}
	regenerate()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fail("failed to create file watcher", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the parent directory; a save may replace the file.
	if err := watcher.Add(filepath.Dir(gc.Input)); err != nil {
		fail("failed to watch input", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !jsonOutput {
		fmt.Printf("  %s Watching %s for changes...\n", green("✓"), gc.Input)
		fmt.Printf("  Press %s to stop\n\n", yellow("Ctrl+C"))
	}
	logger.Info("watching", "input", gc.Input, "debounce", cfg.Watch.Debounce)

	watchInput(ctx, watcher, gc.Input, cfg.Watch.Debounce, logger, regenerate)

	if !jsonOutput {
		fmt.Println("\n  Shutting down...")
	}
}

// watchInput calls onChange after each burst of write, create or rename
// events on input, until ctx is done or the watcher closes.
func watchInput(ctx context.Context, watcher *fsnotify.Watcher, input string, debounce time.Duration, logger *slog.Logger, onChange func()) {
	target := filepath.Clean(input)
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("input changed", "op", event.Op.String())

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, onChange)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error", "error", err)

		case <-ctx.Done():
			return
		}
	}
}

// newLogger returns the diagnostics logger for long-running commands.
// Diagnostics go to stderr so stdout stays parseable with --json.
func newLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if os.Getenv("RGEN_DEBUG") != "" {
		opts.Level = slog.LevelDebug
	}
	if jsonOutput {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
