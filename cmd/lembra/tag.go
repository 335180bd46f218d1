package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lembra/lembra"
	"github.com/lembra/lembra/pkg/core"
	"github.com/spf13/cobra"
)

var tagListJSON bool

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags",
}

var tagAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Register a tag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		repo := openRepo()

		tag := core.Tag{ID: repo.NewID(), Label: args[0]}
		if err := repo.AddTag(context.Background(), tag); err != nil {
			fatal("Failed to add tag", err)
		}

		fmt.Printf("Tag added: %s (%s)\n", tag.Label, tag.ID)
	},
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repo := openRepo(lembra.WithMustExist(true))
		tags := repo.Tags()

		if tagListJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(tags); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if len(tags) == 0 {
			fmt.Println("No tags.")
			return
		}
		for _, t := range tags {
			fmt.Printf("%s  %s\n", t.ID, t.Label)
		}
	},
}

var tagRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a tag",
	Long: `Delete a tag by ID. Notes referencing it keep the dangling reference
in storage; listings simply stop showing the tag.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		repo := openRepo(lembra.WithMustExist(true))

		if err := repo.DeleteTag(context.Background(), id); err != nil {
			fatal("Failed to delete tag", err)
		}

		fmt.Printf("Tag deleted: %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagRmCmd)
	tagListCmd.Flags().BoolVar(&tagListJSON, "json", false, "Output in JSON format")
}
