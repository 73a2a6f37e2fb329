package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucrnz/qakit/pkg/random"
)

var (
	randLength   int
	randAlphabet string
	uuidCount    int
)

func newRandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Generate random test data",
	}

	str := &cobra.Command{
		Use:   "string",
		Short: "Print a random alphanumeric string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if randLength < 0 {
				return fmt.Errorf("-n must be non-negative, got %d", randLength)
			}
			alphabet := randAlphabet
			if alphabet == "" {
				alphabet = random.Alphanumeric
			}
			fmt.Fprintln(cmd.OutOrStdout(), random.FromAlphabet(randLength, alphabet))
			return nil
		},
	}
	str.Flags().IntVarP(&randLength, "length", "n", 10, "Number of characters")
	str.Flags().StringVar(&randAlphabet, "alphabet", "", "Characters to pick from (default A-Z a-z 0-9)")

	digits := &cobra.Command{
		Use:   "digits",
		Short: "Print a random string of decimal digits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if randLength < 0 {
				return fmt.Errorf("-n must be non-negative, got %d", randLength)
			}
			fmt.Fprintln(cmd.OutOrStdout(), random.NumericString(randLength))
			return nil
		},
	}
	digits.Flags().IntVarP(&randLength, "length", "n", 10, "Number of digits")

	id := &cobra.Command{
		Use:   "uuid",
		Short: "Print random version 4 UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for range uuidCount {
				fmt.Fprintln(cmd.OutOrStdout(), random.UUID())
			}
			return nil
		},
	}
	id.Flags().IntVarP(&uuidCount, "count", "c", 1, "Number of UUIDs")

	cmd.AddCommand(str, digits, id)
	return cmd
}
