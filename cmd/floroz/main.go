package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"floroz/pkg/config"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string

	// cfg is loaded before any subcommand runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "floroz",
	Short: "floroz - tokenizer and parser for a small JavaScript-like language",
	Long: `floroz turns source text into tokens and a syntax tree.

Commands:
  tokens   - print the token stream
  ast      - print the syntax tree (text, json or yaml)
  inspect  - list declared functions and variables
  repl     - parse lines interactively
  version  - show build metadata`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: text, json or yaml")

	rootCmd.AddCommand(tokensCmd, astCmd, inspectCmd, replCmd, versionCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if outputFormat != "" {
		loaded.Output = outputFormat
		if err := loaded.Validate(); err != nil {
			return err
		}
	}

	cfg = loaded
	setupLogging(cfg, verbose)

	if cfg.Source != "" {
		pterm.Debug.Printfln("using config %s", cfg.Source)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
