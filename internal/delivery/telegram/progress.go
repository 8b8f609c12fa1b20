package telegram

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// quizSummary aggregates the quiz stats of a learner.
type quizSummary struct {
	Verses   int
	Attempts int
	Correct  int
	Mastered int
}

func summarizeQuiz(stats map[string]entities.QuizStats) quizSummary {
	var s quizSummary
	for _, st := range stats {
		s.Verses++
		s.Attempts += st.TotalAttempts
		s.Correct += st.CorrectAttempts
		if st.HasMastered() {
			s.Mastered++
		}
	}
	return s
}

func formatProgress(p entities.DailyVerseProgress, stats map[string]entities.QuizStats, totalVerses int) string {
	var sb strings.Builder

	sb.WriteString(bold("📊 Your progress"))
	sb.WriteString("\n\n")
	sb.WriteString(md(buildProgressBar(p.TotalVersesLearned, totalVerses, 20)))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("✅ Verses learned: %d / %d", p.TotalVersesLearned, totalVerses)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🔥 Current streak: %d", p.CurrentStreak)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("🏆 Longest streak: %d", p.LongestStreak)))

	q := summarizeQuiz(stats)
	if q.Attempts > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(md(fmt.Sprintf("🧠 Quiz accuracy: %.0f%% (%d/%d)",
			float64(q.Correct)/float64(q.Attempts)*100, q.Correct, q.Attempts)))
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("⭐ Verses mastered: %d / %d", q.Mastered, q.Verses)))
	}

	if keys := p.CompletedVerses.Keys(); len(keys) > 0 {
		const maxShown = 5
		line := "Learned: " + strings.Join(keys[:min(len(keys), maxShown)], ", ")
		if len(keys) > maxShown {
			line += fmt.Sprintf(" and %d more", len(keys)-maxShown)
		}
		sb.WriteString("\n\n")
		sb.WriteString(md(line))
	}

	return sb.String()
}

// buildProgressBar creates ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total <= 0 {
		return fmt.Sprintf("[%s]", strings.Repeat("░", length))
	}

	filled := min(current*length/total, length)
	empty := length - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}
