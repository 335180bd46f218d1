package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lembra/lembra"
	lembralifecycle "github.com/lembra/lembra/pkg/adapters/lifecycle"
	"github.com/lembra/lembra/pkg/core"
	"github.com/spf13/cobra"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the state directory for changes",
	Long: `Print an event whenever a slot file changes on disk, including writes
made by other processes. Watching only observes; concurrent writers still
race at the storage layer (last write wins).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := lembra.NewStore(stateDir,
			lembra.WithFormat(format),
			lembra.WithLogger(slog.Default()),
			lembra.WithMustExist(true),
		)
		if err != nil {
			fatal("Failed to open store", err)
		}

		watchable, ok := store.(core.WatchableStore)
		if !ok {
			fatal("Store does not support watching", fmt.Errorf("adapter: %T", store))
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := watchable.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watching", err)
		}

		// Bridge through the lifecycle source so the watch loop is
		// supervised like any other event pipeline.
		source := lembralifecycle.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}

		fmt.Printf("Watching %s (pattern %q). Ctrl-C to stop.\n", stateDir, watchPattern)
		for e := range source.Events() {
			fmt.Printf("%s  %s\n", time.Now().Format(time.TimeOnly), e)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "*", "Slot key glob to watch")
}
