package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"domkit/pkg/domutil"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-inspect an HTML file whenever it changes",
	Long: `Watches the file and re-runs inspection on every change. Rapid
save bursts (editors often write several events per save) are coalesced
through the debounce window from the profile, so only the last event in a
burst triggers a re-inspect.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := filepath.Clean(args[0])

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save and
	// a file-level watch would die with the old inode.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	reinspect := domutil.Debounce(func(_ error, _ []any) {
		r, err := inspectFile(path, profile.Tags)
		if err != nil {
			logger.Warn("re-inspect failed", zap.String("file", path), zap.Error(err))
			return
		}
		fmt.Print(r.render())
	}, profile.WatchDelay)

	// Initial pass before any event arrives.
	if r, err := inspectFile(path, profile.Tags); err == nil {
		fmt.Print(r.render())
	} else {
		logger.Warn("initial inspect failed", zap.Error(err))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	logger.Info("watching",
		zap.String("file", path),
		zap.Duration("debounce", profile.WatchDelay))

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("file event", zap.String("op", ev.Op.String()))
			reinspect()
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(werr))
		case <-sig:
			logger.Info("stopping watch")
			return nil
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}
	}
}
