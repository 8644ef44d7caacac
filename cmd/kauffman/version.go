package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbertram/kauffman"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of kauffman",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kauffman version %s\n", strings.TrimSpace(kauffman.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
