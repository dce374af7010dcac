package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vyakarana-tools/rupavali"
	"github.com/vyakarana-tools/rupavali/internal/config"
	"github.com/vyakarana-tools/rupavali/internal/logging"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

var rootCmd = &cobra.Command{
	Use:   "rupavali",
	Short: "rupavali is a Sanskrit word-form generator",
	Long: `rupavali derives conjugation tables and nominal forms for the roots of
the dhatupatha, with the step-by-step prakriya behind every form.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}

// newLogger builds the application logger from the --log-level flag.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// newApp loads the configuration file and initializes an App from it,
// with any extra options appended after the config-derived ones.
func newApp(cmd *cobra.Command, extra ...rupavali.Option) (*rupavali.App, config.Config, *slog.Logger, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, cfg, logger, err
	}

	opts, err := cfg.AppOptions()
	if err != nil {
		return nil, cfg, logger, err
	}
	opts = append(opts, rupavali.WithLogger(logger))
	opts = append(opts, extra...)

	app, err := rupavali.New(cmd.Context(), opts...)
	if err != nil {
		return nil, cfg, logger, err
	}
	return app, cfg, logger, nil
}

// addDeriveFlags registers the option and output flags shared by the
// derivation commands.
func addDeriveFlags(cmd *cobra.Command) {
	cmd.Flags().String("prayoga", "", "Restrict to one prayoga (kartari, karmaRi, BAve)")
	cmd.Flags().String("pada", "", "Restrict to one pada (parasmEpada, Atmanepada)")
	cmd.Flags().String("sanadi", "", "Insert a sanadi affix (san, yaN, yaNluk, Ric)")
	cmd.Flags().String("upasarga", "", "Prefix an upasarga (SLP1, e.g. pra)")
	addOutputFlags(cmd)
}

// addOutputFlags registers the format and script flags.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "table", "Output format: table, json, md")
	cmd.Flags().StringP("script", "s", "", "Display script: devanagari, iast, slp1, hk (default from config)")
}

// optionsFromFlags assembles derivation options from the shared flags.
// Names are SLP1, the spelling the data files and the engine use.
func optionsFromFlags(cmd *cobra.Command) (vyakarana.Options, error) {
	var opts vyakarana.Options

	if raw, _ := cmd.Flags().GetString("prayoga"); raw != "" {
		p, err := vyakarana.ParsePrayoga(raw)
		if err != nil {
			return opts, err
		}
		opts.Prayoga = &p
	}
	if raw, _ := cmd.Flags().GetString("pada"); raw != "" {
		p, err := vyakarana.ParseDhatuPada(raw)
		if err != nil {
			return opts, err
		}
		opts.Pada = &p
	}
	if raw, _ := cmd.Flags().GetString("sanadi"); raw != "" {
		s, err := vyakarana.ParseSanadi(raw)
		if err != nil {
			return opts, err
		}
		opts.Sanadi = &s
	}
	opts.Upasarga, _ = cmd.Flags().GetString("upasarga")
	return opts, nil
}

// displayScript resolves the --script flag, falling back to the config.
func displayScript(cmd *cobra.Command, cfg config.Config) (vyakarana.Scheme, error) {
	if raw, _ := cmd.Flags().GetString("script"); raw != "" {
		return vyakarana.ParseScheme(raw)
	}
	return cfg.DefaultScript()
}

// converter returns the transliteration hook the render helpers expect:
// generated forms are SLP1 and get converted to the display script.
func converter(app *rupavali.App, script vyakarana.Scheme) func(string) string {
	if script == vyakarana.SchemeSLP1 {
		return nil
	}
	return func(text string) string {
		return app.Convert(text, vyakarana.SchemeSLP1, script)
	}
}
