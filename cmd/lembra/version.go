package main

import (
	"fmt"

	"github.com/lembra/lembra"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lembra",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lembra version %s\n", lembra.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
