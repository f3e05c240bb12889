package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tlogic-co/pqrs-service/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize pqrs configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the letter service and writes a .pqrs.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
