package root

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/chalisa-kids-bot/internal/ui"
)

func newDailyCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Show the verse of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openServices(ctx, f)
			if err != nil {
				return err
			}
			defer cleanup()

			dv, err := svc.Daily.Today(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDaily, "Verse of the day"))
			fmt.Fprintln(out, ui.Verse(dv.PrayerTitle, dv.Verse, svc.Prayers.AlignVerse(dv.Verse)))
			return nil
		},
	}
}

func newLearnCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "learn PRAYER NUMBER",
		Short: "Mark a verse as learned today",
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

			ctx := context.Background()
			svc, cleanup, err := openServices(ctx, f)
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

			progress := svc.Learners.Get(ctx, f.user).Progress
			firstTime, err := progress.MarkAsCompleted(ctx, v, p.Title)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if firstTime {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Learned "+p.Title+" "+v.Label()))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("Already learned "+p.Title+" "+v.Label()))
			}
			fmt.Fprintln(out, ui.LabelValue(ui.IconStreak+" Streak", progress.Progress().CurrentStreak))
			return nil
		},
	}
}

func newProgressCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show streaks and quiz results of a learner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openServices(ctx, f)
			if err != nil {
				return err
			}
			defer cleanup()

			learner := svc.Learners.Get(ctx, f.user)
			p := learner.Progress.Progress()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconStreak, "Progress"))
			fmt.Fprintln(out, ui.LabelValue("Current streak", p.CurrentStreak))
			fmt.Fprintln(out, ui.LabelValue("Longest streak", p.LongestStreak))
			fmt.Fprintln(out, ui.LabelValue("Verses learned", p.TotalVersesLearned))
			if learner.Progress.HasCompletedToday() {
				fmt.Fprintln(out, ui.Good.Render("Done for today"))
			}

			stats := learner.Quiz.AllStats()
			if len(stats) == 0 {
				return nil
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.H2.Render(ui.IconQuiz+" Quiz"))
			for _, key := range slices.Sorted(maps.Keys(stats)) {
				s := stats[key]
				line := fmt.Sprintf("%s %d/%d", key, s.CorrectAttempts, s.TotalAttempts)
				if s.HasMastered() {
					line += " " + ui.Gold.Render("mastered")
				}
				fmt.Fprintln(out, "- "+line)
			}
			return nil
		},
	}
}
