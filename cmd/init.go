package cmd

import (
	"github.com/spf13/cobra"

	"github.com/propertyloop/leadmatch/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize leadmatch configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure this instance and writes a .leadmatch.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
