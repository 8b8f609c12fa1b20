package root

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aliskhannn/chalisa-kids-bot/internal/ui"
)

var errNoQuiz = errors.New("this prayer has no quiz")

func newQuizCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "quiz PRAYER",
		Short: "Take the quiz of a prayer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIndex(args[0], "prayer")
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

			quiz := svc.Learners.Get(ctx, f.user).Quiz
			if !quiz.HasQuestions(p.Title) {
				return errNoQuiz
			}

			out := cmd.OutOrStdout()
			in := bufio.NewScanner(cmd.InOrStdin())
			session := quiz.StartQuiz(p)

			fmt.Fprintln(out, ui.Heading(ui.IconQuiz, p.Title+" quiz"))
			for {
				q, err := quiz.Present(session)
				if err != nil {
					return err
				}
				if q == nil {
					break
				}

				fmt.Fprintf(out, "\n%s %s\n", ui.Muted.Render(fmt.Sprintf("[%d/%d]", session.Position+1, session.TotalQuestions())), ui.H2.Render(q.Question))
				for i, o := range q.Options {
					fmt.Fprintf(out, "  %s %s\n", ui.Key.Render(strconv.Itoa(i+1)+")"), o)
				}

				selected := -1
				for selected < 0 {
					fmt.Fprint(out, "> ")
					if !in.Scan() {
						fmt.Fprintln(out)
						return in.Err()
					}
					if v, err := strconv.Atoi(strings.TrimSpace(in.Text())); err == nil && v >= 1 && v <= len(q.Options) {
						selected = v - 1
					}
				}

				correct, err := quiz.Answer(ctx, session, p, selected)
				if err != nil {
					return err
				}
				if correct {
					fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Correct!"))
				} else {
					fmt.Fprintln(out, ui.Bad.Render(ui.IconMiss+" The answer is "+q.CorrectAnswer()))
				}
				if q.Explanation != "" {
					fmt.Fprintln(out, ui.Muted.Render(q.Explanation))
				}

				if _, err := quiz.Next(session); err != nil {
					return err
				}
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.LabelValue("Score", fmt.Sprintf("%d/%d", session.CorrectAnswers, session.AnsweredQuestions)))
			return nil
		},
	}
}
