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

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Long:  `Show a resolved note by its ID. A missing ID is reported plainly; it is not a fault.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		repo := openRepo(lembra.WithMustExist(true))

		note, ok := repo.GetNoteByID(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Note not found: %s\n", id)
			os.Exit(1)
		}

		if showJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Printf("# %s\n", note.Title)
		if len(note.Tags) > 0 {
			labels := make([]string, len(note.Tags))
			for i, t := range note.Tags {
				labels[i] = t.Label
			}
			fmt.Printf("tags: %s\n", strings.Join(labels, ", "))
		}
		fmt.Printf("words: %d\n\n", core.WordCount(note.Text))
		fmt.Println(note.Text)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
