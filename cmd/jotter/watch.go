package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/jotter/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload notes whenever the notes directory changes",
	Long: `Watch the notes directory for changes made by other programs and
reconcile the metadata store after each one. Stops on Ctrl+C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc := openService()
		notes, err := svc.LoadAll(ctx)
		if err != nil {
			fatal("Failed to load notes", err)
		}

		events, err := svc.Watch(ctx)
		if err != nil {
			fatal("Failed to watch notes", err)
		}
		src := lifecycle.NewSource(events)
		if err := src.Start(ctx); err != nil {
			fatal("Failed to start watcher", err)
		}
		fmt.Printf("Watching %d notes. Press Ctrl+C to stop.\n", len(notes))

		// One reload per burst: the source coalesces events within lifecycle.DefaultWindow.
		for batch := range src.Events() {
			fmt.Println(batch)
			notes, err = svc.LoadAll(ctx)
			if err != nil {
				if ctx.Err() != nil {
					break
				}
				slog.Error("reload failed", "error", err)
				continue
			}
			slog.Debug("notes reloaded", "count", len(notes))
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
