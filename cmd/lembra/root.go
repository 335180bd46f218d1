package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lembra/lembra"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	stateDir string
	format   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lembra",
	Short: "A local-first note store with tags",
	Long: `lembra keeps short text notes and reusable tags in a local state
directory. Notes reference tags by id; listings resolve them on the fly.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// openRepo wires the repository against the configured state directory.
func openRepo(opts ...lembra.Option) *lembra.Repository {
	opts = append([]lembra.Option{
		lembra.WithFormat(format),
		lembra.WithLogger(slog.Default()),
	}, opts...)

	repo, err := lembra.Open(stateDir, opts...)
	if err != nil {
		if lembra.IsCorrupt(err) {
			fatal("Stored state is unreadable (refusing to overwrite it with defaults)", err)
		}
		fatal("Failed to open note store", err)
	}
	return repo
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&stateDir, "dir", ".lembra", "State directory")
	rootCmd.PersistentFlags().StringVar(&format, "format", "json", "Slot format (json or yaml)")
}
