package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lembra/lembra"
	"github.com/spf13/cobra"
)

var (
	editTitle string
	editText  string
	editTags  []string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note",
	Long: `Replace a note's title, text, or tags. Fields without a flag keep
their current value. Passing --tag replaces the whole tag set; new labels
are registered first.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		repo := openRepo(lembra.WithMustExist(true))
		ctx := context.Background()

		current, ok := repo.GetNoteByID(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Note not found: %s\n", id)
			os.Exit(1)
		}

		title := current.Title
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		text := current.Text
		if cmd.Flags().Changed("text") {
			text = editText
		}
		tagRefs := current.Tags
		if cmd.Flags().Changed("tag") {
			var err error
			tagRefs, err = resolveLabels(ctx, repo, editTags, true)
			if err != nil {
				fatal("Failed to register tags", err)
			}
		}

		if err := repo.UpdateNote(ctx, id, title, text, tagRefs); err != nil {
			fatal("Failed to update note", err)
		}

		fmt.Printf("Note updated: %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editText, "text", "", "New text")
	editCmd.Flags().StringArrayVarP(&editTags, "tag", "t", nil, "New tag label (repeatable, replaces all)")
}
