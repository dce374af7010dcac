package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vyakarana-tools/rupavali"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rupavali",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rupavali version %s\n", strings.TrimSpace(rupavali.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
