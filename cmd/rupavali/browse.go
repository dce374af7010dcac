package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vyakarana-tools/rupavali/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Explore the dhatupatha interactively",
	Long: `Opens the terminal UI: filter the dhatupatha, pick a root, and walk its
tinanta and krdanta forms with the prakriya one keypress away.

The session bar shows the live locator string. Pass a saved one via
--restore to pick up exactly where it was taken.`,
	Run: func(cmd *cobra.Command, args []string) {
		app, cfg, _, err := newApp(cmd)
		if err != nil {
			fmt.Printf("Error initializing rupavali: %v\n", err)
			os.Exit(1)
		}

		script, err := displayScript(cmd, cfg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		restore, _ := cmd.Flags().GetString("restore")
		if err := tui.Run(app, restore, script); err != nil {
			fmt.Printf("Error running UI: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringP("restore", "r", "", "Locator string of a session to restore")
	browseCmd.Flags().StringP("script", "s", "", "Display script: devanagari, iast, slp1, hk (default from config)")
}
