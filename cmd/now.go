package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/subjectivelabs/sj/internal/config"
	"github.com/subjectivelabs/sj/internal/subjective"
)

var nowCmd = &cobra.Command{
	Use:     "now",
	Aliases: []string{"n"},
	Short:   "View time information",
	RunE:    runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)
	now, err := queryTime(cmd)
	if err != nil {
		return err
	}
	dir, err := dataDir()
	if err != nil {
		return err
	}
	cfg := config.Load()
	printer.Infof("loading data from %q...", dir)
	data, err := subjective.Load(dir)
	if err != nil {
		return err
	}

	printer.Now(now)
	if last, findErr := data.FindFirstBefore(now, cfg.VariantOffset); findErr == nil {
		line, err := data.Format(last, true)
		if err != nil {
			return err
		}
		printer.Bell(line)
	}

	next, findErr := data.FindFirstAfter(now, cfg.VariantOffset)
	if findErr != nil {
		var weekdayErr *subjective.WeekdayError
		if !errors.Is(findErr, subjective.ErrNoBellFound) && !errors.As(findErr, &weekdayErr) {
			return findErr
		}
		// Nothing left today (or a weekend): show the next day with bells.
		day, date, ok := data.NextDayWithBells(now, cfg.VariantOffset)
		if !ok {
			return nil
		}
		printer.UpcomingDay(date.Weekday().String())
		for i := range day {
			line, err := data.Format(&day[i], true)
			if err != nil {
				return err
			}
			printer.Bell(line)
		}
		return nil
	}

	printer.Upcoming(next.Time.At(now), now)
	line, err := data.Format(next, false)
	if err != nil {
		return err
	}
	printer.Bell(line)

	rest, findErr := data.FindAllAfter(now, cfg.VariantOffset)
	if findErr == nil && len(rest) > 1 {
		printer.Next()
		for i := range rest[1:] {
			line, err := data.Format(&rest[i+1], true)
			if err != nil {
				return err
			}
			printer.Bell(line)
		}
	}
	return nil
}
