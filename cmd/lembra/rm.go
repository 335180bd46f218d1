package main

import (
	"context"
	"fmt"

	"github.com/lembra/lembra"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a note",
	Long:  `Delete a note from the store. Tags stay untouched, even when no other note references them.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		repo := openRepo(lembra.WithMustExist(true))

		if err := repo.DeleteNote(context.Background(), id); err != nil {
			fatal("Failed to delete note", err)
		}

		fmt.Printf("Note deleted: %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
