package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/chalisa-kids-bot/internal/service"
	"github.com/aliskhannn/chalisa-kids-bot/internal/ui"
)

func newAlignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "align NATIVE TRANSLITERATION",
		Short: "Pair the words of a text with its transliteration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Aligned(service.Align(args[0], args[1])))
			return nil
		},
	}
}
