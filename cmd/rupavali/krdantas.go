package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vyakarana-tools/rupavali/internal/render"
)

var krdantasCmd = &cobra.Command{
	Use:   "krdantas <code>",
	Short: "Derive the krdanta forms of a dhatu",
	Long: `Derives the demo's krt affix groups for the dhatu with the given catalog
code: ordinary nominals, participles, and indeclinables. Affixes the
engine cannot apply stay in the listing with no forms.`,
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

		forms, err := app.KrdantaForms(cmd.Context(), args[0], opts)
		if err != nil {
			fmt.Printf("Error deriving krdantas: %v\n", err)
			os.Exit(1)
		}

		if err := render.Krdantas(os.Stdout, forms, format, converter(app, script)); err != nil {
			fmt.Printf("Error rendering output: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(krdantasCmd)
	addDeriveFlags(krdantasCmd)
}
