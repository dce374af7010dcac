package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vyakarana-tools/rupavali/internal/dto"
	"github.com/vyakarana-tools/rupavali/internal/render"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

var prakriyaCmd = &cobra.Command{
	Use:   "prakriya <pada>",
	Short: "Show the derivation behind a generated form",
	Long: `Re-derives a generated form and prints its step history with the sutra
texts attached. The argument is the JSON pada descriptor other commands
and the HTTP API emit (the activePada locator value); pass "-" to read
it from stdin.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw := []byte(args[0])
		if args[0] == "-" {
			var err error
			raw, err = io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Printf("Error reading stdin: %v\n", err)
				os.Exit(1)
			}
		}

		pada, err := vyakarana.UnmarshalPada(raw)
		if err != nil {
			fmt.Printf("Error parsing pada descriptor: %v\n", err)
			os.Exit(1)
		}

		app, _, _, err := newApp(cmd)
		if err != nil {
			fmt.Printf("Error initializing rupavali: %v\n", err)
			os.Exit(1)
		}

		derivation, err := app.Prakriya(cmd.Context(), pada)
		if err != nil {
			fmt.Printf("Error deriving prakriya: %v\n", err)
			os.Exit(1)
		}
		if derivation == nil {
			fmt.Println("The current engine does not produce this form.")
			os.Exit(1)
		}

		width := render.Width(os.Stdout, 80)
		if err := render.Prakriya(os.Stdout, dto.FromDerivation(*derivation, app.Sutrapatha().Text), width); err != nil {
			fmt.Printf("Error rendering output: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(prakriyaCmd)
}
