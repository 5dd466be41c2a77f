package cmd

import (
	"github.com/spf13/cobra"

	"github.com/subjectivelabs/sj/internal/config"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"c"},
	Short:   "Configure Subjective settings",
}

func init() {
	initCmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Initialise configuration",
		RunE:    runConfigInit,
	}
	configCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	path, err := config.Init(dir)
	if err != nil {
		return err
	}
	printer.Successf("Successfully initialised configuration at %q.", path)
	return nil
}
