// Package cmd holds the pqrs command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pqrs",
	Short: "AI-drafted reply letters for water-utility PQRS cases",
	Long: `pqrs drafts formal reply letters for customer PQRS cases (Petición,
Queja, Reclamo, Sugerencia). Customer records are synthetic and derived
deterministically from the contract number; replies are drafted by an
LLM provider and exported as .docx letters on the corporate letterhead.`,
}

func Execute() error {
	// A .env next to the binary is the easiest place for API keys
	// during development; missing files are fine.
	godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".pqrs.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
