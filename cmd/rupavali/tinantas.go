package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vyakarana-tools/rupavali/internal/render"
)

var tinantasCmd = &cobra.Command{
	Use:   "tinantas <code>",
	Short: "Derive the conjugation tables of a dhatu",
	Long: `Derives every non-empty conjugation table for the dhatu with the given
catalog code, one three-by-three grid per lakara and prayoga. Options
narrow or modify the derivation; a paradigm with any underivable cell
is dropped whole.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := optionsFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

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
		format, _ := cmd.Flags().GetString("format")

		tables, err := app.TinantaTables(cmd.Context(), args[0], opts)
		if err != nil {
			fmt.Printf("Error deriving tinantas: %v\n", err)
			os.Exit(1)
		}
		if len(tables) == 0 && format == render.FormatTable {
			fmt.Println("No complete paradigms for this selection.")
			return
		}

		if err := render.Tinantas(os.Stdout, tables, format, converter(app, script)); err != nil {
			fmt.Printf("Error rendering output: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tinantasCmd)
	addDeriveFlags(tinantasCmd)
}
