package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lembra/lembra"
	"github.com/lembra/lembra/pkg/core"
	"github.com/spf13/cobra"
)

var (
	listJSON   bool
	listTitle  string
	listLabels []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long: `List resolved notes, optionally filtered by a case-insensitive title
substring and by required tag labels (a note must carry all of them).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repo := openRepo(lembra.WithMustExist(true))

		notes := repo.ResolvedNotes()

		filter := core.Filter{Title: listTitle}
		for _, label := range listLabels {
			id, ok := findTagID(repo.Tags(), label)
			if !ok {
				// Requiring a label no tag carries can never match.
				notes = nil
				break
			}
			filter.TagIDs = append(filter.TagIDs, id)
		}
		filtered := filter.Apply(notes)

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if len(filtered) == 0 {
			fmt.Println("No notes found.")
			return
		}

		for _, note := range filtered {
			labels := make([]string, len(note.Tags))
			for i, t := range note.Tags {
				labels[i] = t.Label
			}
			line := fmt.Sprintf("%s  %s", note.ID, note.Title)
			if len(labels) > 0 {
				line += fmt.Sprintf("  [%s]", strings.Join(labels, ", "))
			}
			line += fmt.Sprintf("  (%d words)", core.WordCount(note.Text))
			fmt.Println(line)
		}
	},
}

func findTagID(tags []core.Tag, label string) (string, bool) {
	for _, t := range tags {
		if t.Label == label {
			return t.ID, true
		}
	}
	return "", false
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listTitle, "title", "", "Filter by title substring")
	listCmd.Flags().StringArrayVarP(&listLabels, "tag", "t", nil, "Require tag label (repeatable)")
}
