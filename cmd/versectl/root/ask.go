package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "ask PRAYER QUESTION...",
		Short: "Ask a question about a prayer",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIndex(args[0], "prayer")
			if err != nil {
				return err
			}

			svc, cleanup, err := openServices(context.Background(), f)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Prayers.GetByIndex(n)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), svc.Answerer.Answer(strings.Join(args[1:], " "), p))
			return nil
		},
	}
}
