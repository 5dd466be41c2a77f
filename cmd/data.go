package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/subjectivelabs/sj/internal/catalog"
	"github.com/subjectivelabs/sj/internal/subjective"
	"github.com/subjectivelabs/sj/internal/tui"
)

var dataCmd = &cobra.Command{
	Use:     "data",
	Aliases: []string{"d"},
	Short:   "Configure Subjective data",
}

func init() {
	pullCmd := &cobra.Command{
		Use:     "pull",
		Aliases: []string{"p"},
		Short:   "Pull school from SubjectiveKit",
		RunE:    runDataPull,
	}
	pullCmd.Flags().StringP("server", "s", catalog.DefaultServer,
		fmt.Sprintf("server to pull from, defaults to %q", catalog.DefaultServer))

	loadCmd := &cobra.Command{
		Use:     "load <file>",
		Aliases: []string{"l"},
		Short:   "Load school and subjects from a local file",
		Args:    cobra.ExactArgs(1),
		RunE:    runDataLoad,
	}

	dataCmd.AddCommand(pullCmd)
	dataCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(dataCmd)
}

func runDataPull(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)
	server, _ := cmd.Flags().GetString("server")

	printer.Infof("fetching schools from %q...", server)
	schools, err := catalog.Fetch(cmd.Context(), server)
	if err != nil {
		return err
	}
	printer.Infof("prompting for a school...")
	school, err := tui.PickSchool(schools)
	if err != nil {
		return err
	}
	return saveData(cmd, subjective.FromSchool(*school))
}

func runDataLoad(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)
	file := args[0]

	printer.Infof("reading data from %q...", file)
	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("couldn't read data from %q: %w", file, err)
	}
	data, err := subjective.Parse(raw)
	if err != nil {
		return fmt.Errorf("couldn't parse data from %q: %w", file, err)
	}
	return saveData(cmd, data)
}

func saveData(cmd *cobra.Command, data *subjective.Subjective) error {
	printer := newPrinter(cmd)
	dir, err := dataDir()
	if err != nil {
		return err
	}
	if err := subjective.Save(data, dir); err != nil {
		return err
	}
	printer.Successf("Successfully saved data to %q.", filepath.Join(dir, subjective.DataFileName))
	return nil
}
