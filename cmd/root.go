package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/subjectivelabs/sj/internal/config"
	"github.com/subjectivelabs/sj/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "sj",
	Short: "Subjective's CLI tool. Manage classes and bell times from the command line.",
	Long: `sj answers "what is happening now, next, and before" against a school's
weekly bell schedule, including multi-week rotating timetables.`,
	RunE: runNow,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("time", "t", "", "use a custom time instead of the current time")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.SilenceUsage = true
}

func initConfig() {
	if dir, err := config.Dir(); err == nil {
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
		viper.AddConfigPath(dir)
	}

	viper.SetEnvPrefix("SJ")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// newPrinter builds the printer honoring the global --verbose flag.
func newPrinter(cmd *cobra.Command) *ui.Printer {
	printer := ui.New()
	printer.Verbose, _ = cmd.Flags().GetBool("verbose")
	return printer
}

// dataDir resolves the directory holding the .subjective data file: the
// data_dir setting when present, otherwise the sj config directory.
func dataDir() (string, error) {
	if cfg := config.Load(); cfg.DataDir != "" {
		return cfg.DataDir, nil
	}
	return config.Dir()
}

// timeLayouts accepted by the global --time flag.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"15:04",
}

// queryTime returns the time to answer queries against: the --time flag when
// given, otherwise the current local time. A bare wall-clock value applies to
// today.
func queryTime(cmd *cobra.Command) (time.Time, error) {
	raw, _ := cmd.Flags().GetString("time")
	if raw == "" {
		return time.Now(), nil
	}
	for _, layout := range timeLayouts {
		parsed, err := time.ParseInLocation(layout, raw, time.Local)
		if err != nil {
			continue
		}
		if layout == "15:04" {
			now := time.Now()
			parsed = time.Date(now.Year(), now.Month(), now.Day(),
				parsed.Hour(), parsed.Minute(), 0, 0, time.Local)
		}
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("couldn't parse --time value %q", raw)
}
