// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"carvel.dev/yamlast/pkg/cmd/ui"
	"carvel.dev/yamlast/pkg/files"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const defaultWatchDebounce = 100 * time.Millisecond

type WatchOptions struct {
	Check    CheckOptions
	Debounce time.Duration
}

func NewWatchOptions() *WatchOptions {
	return &WatchOptions{Debounce: defaultWatchDebounce}
}

func NewWatchCmd(o *WatchOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Check YAML files again whenever they change",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.Check.Input.Set(cmd)
	cmd.Flags().BoolVar(&o.Check.DuplicateKeys, "duplicate-keys", false, "Also report duplicated mapping keys")
	cmd.Flags().DurationVar(&o.Debounce, "debounce", o.Debounce, "Quiet period after a change before checking again")
	return cmd
}

func (o *WatchOptions) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return o.RunWithUI(ctx, ui.NewTTY(o.Check.Input.Debug))
}

// RunWithUI checks the files once, then again after each change, until ctx is done.
func (o *WatchOptions) RunWithUI(ctx context.Context, ui ui.UI) error {
	paths, err := o.watchedPaths()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("Creating file watcher: %s", err)
	}
	defer watcher.Close()

	// Directories are watched so that editors replacing files are noticed.
	dirs := map[string]struct{}{}
	for _, path := range paths {
		dir := filepath.Dir(path)
		if _, seen := dirs[dir]; seen {
			continue
		}
		dirs[dir] = struct{}{}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("Watching '%s': %s", dir, err)
		}
	}

	o.checkOnce(ui)

	timer := time.NewTimer(o.Debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("Expected file watcher events to stay open")
			}
			if !o.isRelevant(event, paths) {
				continue
			}
			ui.Debugf("change: %s %s\n", event.Op, event.Name)
			timer.Reset(o.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("Expected file watcher errors to stay open")
			}
			ui.Warnf("Watching files: %s\n", err)

		case <-timer.C:
			o.checkOnce(ui)
		}
	}
}

func (o *WatchOptions) checkOnce(ui ui.UI) {
	if err := o.Check.RunWithUI(ui); err != nil {
		ui.Warnf("Error: %s\n", err)
	}
}

// watchedPaths lists the local files selected by the input flags.
func (o *WatchOptions) watchedPaths() ([]string, error) {
	selected, err := files.NewFiles(o.Check.Input.Files, o.Check.Input.Recursive)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, file := range selected {
		path, ok := file.LocalPath()
		if !ok {
			return nil, fmt.Errorf("Expected only local files to be watched, but got %s", file.Description())
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		paths = append(paths, abs)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("Expected at least one file to watch (via --file/-f)")
	}
	return paths, nil
}

func (o *WatchOptions) isRelevant(event fsnotify.Event, paths []string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return slices.Contains(paths, name)
}
