package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lembra/lembra"
	"github.com/lembra/lembra/pkg/core"
	"github.com/spf13/cobra"
)

var (
	newTitle string
	newText  string
	newTags  []string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note",
	Long: `Create a note with a title, text, and optional tags. Text is read
from stdin when --text is not given. Tag labels that don't exist yet are
registered before the note is created.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if newTitle == "" {
			fmt.Fprintln(os.Stderr, "Error: --title is required")
			cmd.Usage()
			os.Exit(1)
		}

		text := newText
		if !cmd.Flags().Changed("text") {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read text from stdin", err)
			}
			text = string(data)
		}

		repo := openRepo()
		ctx := context.Background()

		// Register unknown labels first; note creation never registers
		// tags on its own.
		tagRefs, err := resolveLabels(ctx, repo, newTags, true)
		if err != nil {
			fatal("Failed to register tags", err)
		}

		if err := repo.CreateNote(ctx, newTitle, text, tagRefs); err != nil {
			fatal("Failed to create note", err)
		}

		fmt.Printf("Note created: %s\n", newTitle)
	},
}

// resolveLabels maps tag labels to Tag values from the current tag
// collection, matching the first tag carrying each label. With register
// set, unknown labels are minted and added; otherwise they are skipped.
func resolveLabels(ctx context.Context, repo *lembra.Repository, labels []string, register bool) ([]core.Tag, error) {
	existing := repo.Tags()

	var refs []core.Tag
	for _, label := range labels {
		found := false
		for _, t := range existing {
			if t.Label == label {
				refs = append(refs, t)
				found = true
				break
			}
		}
		if found {
			continue
		}
		if !register {
			continue
		}

		tag := core.Tag{ID: repo.NewID(), Label: label}
		if err := repo.AddTag(ctx, tag); err != nil {
			return nil, err
		}
		existing = append(existing, tag)
		refs = append(refs, tag)
	}
	return refs, nil
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newTitle, "title", "", "Note title")
	newCmd.Flags().StringVar(&newText, "text", "", "Note text (stdin when omitted)")
	newCmd.Flags().StringArrayVarP(&newTags, "tag", "t", nil, "Tag label (repeatable)")
	newCmd.MarkFlagRequired("title")
}
