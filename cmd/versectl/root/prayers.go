package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/chalisa-kids-bot/internal/ui"
)

func newPrayersCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "prayers",
		Short: "List prayers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openServices(context.Background(), f)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPrayer, "Prayers"))
			for i, p := range svc.Prayers.GetAll() {
				fmt.Fprintf(out, "%s %s %s %s\n",
					ui.Key.Render(fmt.Sprintf("%d.", i+1)),
					p.Title,
					ui.Muted.Render(p.TitleHindi),
					ui.Muted.Render(fmt.Sprintf("(%s, %d verses)", p.Type, p.TotalVerses())),
				)
			}
			return nil
		},
	}
}

func newVersesCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "verses PRAYER",
		Short: "List the verses of a prayer",
		Args:  cobra.ExactArgs(1),
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconVerse, p.Title))
			for _, v := range p.AllVerses() {
				fmt.Fprintf(out, "%s %s\n", ui.Key.Render(fmt.Sprintf("%4d", v.Number)), v.SimpleTranslation)
			}
			return nil
		},
	}
}

func newVerseCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "verse PRAYER NUMBER",
		Short: "Show a verse with its word by word transliteration",
		Long:  "Show a verse with its word by word transliteration.\nDohas have negative numbers; pass them after --, as in: versectl verse -- 1 -1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIndex(args[0], "prayer")
			if err != nil {
				return err
			}
			number, err := parseIndex(args[1], "verse")
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
			_, v, err := svc.Prayers.GetVerse(p.Title, number)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Verse(p.Title, v, svc.Prayers.AlignVerse(v)))
			return nil
		},
	}
}
