package main

import (
	"encoding/json"
	"os"

	"github.com/lembra/lembra"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print repository state",
	Long:  `Print the repository's introspection state (collection sizes, store type) as JSON.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repo := openRepo(lembra.WithMustExist(true))

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(repo.State()); err != nil {
			fatal("Failed to encode state", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
