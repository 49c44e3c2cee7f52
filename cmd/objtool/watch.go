package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file.obj>",
		Short: "Re-check an OBJ file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			report := func(path string) {
				results := checkFiles([]string{path}, 1, a.mesh)
				printResults(cmd.OutOrStdout(), results)
			}
			return watchFile(ctx, args[0], a.log, report)
		},
	}
}

// watchFile calls onChange for path once at start and after every write
// until ctx is done. The parent directory is watched so editors that
// replace the file through a rename are still followed.
func watchFile(ctx context.Context, path string, log *zap.Logger, onChange func(string)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	log.Info("watching", zap.String("path", abs))

	onChange(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				log.Debug("file changed", zap.String("op", ev.Op.String()))
				onChange(path)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}
