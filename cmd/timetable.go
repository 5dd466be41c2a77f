package cmd

import (
	"github.com/spf13/cobra"

	"github.com/subjectivelabs/sj/internal/subjective"
	"github.com/subjectivelabs/sj/internal/tui"
)

var timetableCmd = &cobra.Command{
	Use:     "timetable",
	Aliases: []string{"t"},
	Short:   "View timetable information",
}

func init() {
	showCmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"s"},
		Short:   "Show timetable",
		RunE:    runTimetableShow,
	}
	timetableCmd.AddCommand(showCmd)
	rootCmd.AddCommand(timetableCmd)
}

func runTimetableShow(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)
	dir, err := dataDir()
	if err != nil {
		return err
	}
	printer.Infof("loading data from %q...", dir)
	data, err := subjective.Load(dir)
	if err != nil {
		return err
	}
	return tui.ShowTimetable(data, dir)
}
