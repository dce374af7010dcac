package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vyakarana-tools/rupavali/internal/render"
)

var dhatusCmd = &cobra.Command{
	Use:   "dhatus [query]",
	Short: "List or search the dhatupatha",
	Long: `Lists the loaded dhatupatha. With a query, filters it: the query may be
typed in Harvard-Kyoto or Devanagari and matches codes, root forms, and
meanings.`,
	Args: cobra.MaximumNArgs(1),
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
		format, _ := cmd.Flags().GetString("format")

		query := ""
		if len(args) > 0 {
			query = args[0]
		}

		matches := app.SearchDhatus(query)
		if len(matches) == 0 && query != "" && format == render.FormatTable {
			suggestions := app.Catalog().Suggest(query, 3)
			if len(suggestions) > 0 {
				names := make([]string, len(suggestions))
				for i, d := range suggestions {
					names[i] = d.Clean
				}
				fmt.Printf("No matches for %q. Did you mean: %s?\n", query, strings.Join(names, ", "))
				return
			}
		}

		if err := render.Dhatus(os.Stdout, matches, format, converter(app, script)); err != nil {
			fmt.Printf("Error rendering output: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dhatusCmd)
	addOutputFlags(dhatusCmd)
}
