package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/thaidoc/internal/thaifmt"
)

func newThaiDateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "thaidate <date>",
		Short: "Print a date in Thai with the Buddhist-era year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := thaifmt.FormatDateThai(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
