package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucrnz/qakit/internal/logging"
	"github.com/lucrnz/qakit/pkg/datetime"
	"github.com/lucrnz/qakit/pkg/duration"
)

var (
	extended         bool
	progressInterval time.Duration
	datePattern      string
	timestampPattern string
)

func parseDuration(s string) (time.Duration, error) {
	if extended {
		return duration.ParseExtended(s)
	}
	return duration.Parse(s)
}

func newDurationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duration <text>",
		Short: "Print a duration string as milliseconds",
		Example: `  qakit duration 1h30m      # 5400000
  qakit duration 2d         # 172800000
  qakit duration --extended 1.5h`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !extended {
				// Millisecond totals can exceed time.Duration's range.
				ms, err := duration.ParseMillis(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ms)
				return nil
			}
			d, err := duration.ParseExtended(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Milliseconds())
			return nil
		},
	}
	cmd.Flags().BoolVar(&extended, "extended", false, "Accept Go-style durations with fractions and weeks (1.5h, 2w3d)")
	return cmd
}

func newWaitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait <text>",
		Short: "Sleep for a duration such as 30s or 1m30s",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDuration(args[0])
			if err != nil {
				return err
			}
			var opts []duration.WaitOption
			if progressInterval > 0 {
				opts = append(opts, duration.WithProgress(logging.FromContext(cmd.Context()), progressInterval))
			}
			return duration.Wait(cmd.Context(), d, opts...)
		},
	}
	cmd.Flags().BoolVar(&extended, "extended", false, "Accept Go-style durations with fractions and weeks (1.5h, 2w3d)")
	cmd.Flags().DurationVar(&progressInterval, "progress", 0, "Log wait_progress events at this interval (0 = off)")
	return cmd
}

func newNowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current timestamp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), datetime.CurrentTimestamp(timestampPattern))
			return nil
		},
	}
	cmd.Flags().StringVarP(&timestampPattern, "format", "f", datetime.DefaultTimestampPattern, "Pattern (yyyy-MM-dd HH:mm:ss, %Y-%m-%d, or a Go layout)")
	return cmd
}

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), datetime.TodayDate(datePattern))
			return nil
		},
	}
	cmd.Flags().StringVarP(&datePattern, "format", "f", datetime.DefaultDatePattern, "Pattern (yyyy-MM-dd, %d/%m/%Y, or a Go layout)")
	return cmd
}
