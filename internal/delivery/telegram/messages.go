// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// Error messages.
const (
	msgPrayerNotFound   = "I couldn't find that prayer. Use /prayers to see the list."
	msgVerseNotFound    = "That verse doesn't exist in this prayer. Try /verse 1."
	msgUseVerse         = "Use: /verse 5"
	msgUsePrayer        = "Use: /prayer 2"
	msgUseAsk           = "Ask me anything about the prayer, for example: /ask What does verse 3 mean?"
	msgNoQuiz           = "There is no quiz for this prayer yet."
	msgQuizExpired      = "This quiz is over. Start a new one with /quiz."
	msgDailyUnavailable = "The daily verse is not available right now. Try again later."
	msgInternalError    = "Something went wrong. Please try again later."
	msgUnknownCommand   = "I don't know that command. Use /help to see what I can do."
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// welcomeMarkdownV2 builds welcome message safely for MarkdownV2.
func welcomeMarkdownV2() string {
	var sb strings.Builder

	sb.WriteString(md("🙏 Jai Shri Ram!"))
	sb.WriteString("\n\n")
	sb.WriteString(bold("Chalisa Kids"))
	sb.WriteString(md(" helps you learn Hanuman Chalisa and other prayers one verse at a time."))
	sb.WriteString("\n\n")

	sb.WriteString(md("📖 Read every verse with its "))
	sb.WriteString(bold("transliteration"))
	sb.WriteString(md(" and a simple meaning."))
	sb.WriteString("\n")
	sb.WriteString(md("🌅 Get a "))
	sb.WriteString(bold("verse of the day"))
	sb.WriteString(md(" and build a learning streak."))
	sb.WriteString("\n")
	sb.WriteString(md("🧠 Take "))
	sb.WriteString(bold("quizzes"))
	sb.WriteString(md(" and ask questions about the prayers."))
	sb.WriteString("\n\n")

	sb.WriteString(md("Pick a prayer below to begin, or send /help."))

	return sb.String()
}

func helpMarkdownV2() string {
	lines := []string{
		bold("What I can do"),
		"",
		md("/prayers - list all prayers"),
		md("/prayer N - open prayer N"),
		md("/verse N - read verse N of the current prayer"),
		md("/ask QUESTION - ask about the current prayer"),
		md("/quiz - quiz on the current prayer"),
		md("/daily - today's verse"),
		md("/progress - your streak and quiz results"),
		md("/remind - turn the daily reminder on or off"),
		"",
		md("You can also just type a question."),
	}
	return strings.Join(lines, "\n")
}

func formatPrayerList(prayers []*entities.Prayer) string {
	var sb strings.Builder
	sb.WriteString(bold("📿 Prayers"))
	sb.WriteString("\n\n")
	for i, p := range prayers {
		sb.WriteString(md(fmt.Sprintf("%d. %s", i+1, p.Title)))
		if p.TitleHindi != "" {
			sb.WriteString(md(" · " + p.TitleHindi))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatPrayer(p *entities.Prayer) string {
	var sb strings.Builder

	sb.WriteString(bold(p.Title))
	if p.TitleHindi != "" {
		sb.WriteString("\n")
		sb.WriteString(md(p.TitleHindi))
	}
	sb.WriteString("\n\n")
	sb.WriteString(italic(fmt.Sprintf("%s · %s", p.Type, p.Category)))
	sb.WriteString("\n\n")
	sb.WriteString(md(p.Description))
	sb.WriteString("\n\n")

	counts := fmt.Sprintf("📖 %d verses", len(p.Verses))
	if n := len(p.OpeningVerses) + len(p.ClosingVerses); n > 0 {
		counts += fmt.Sprintf(" and %d dohas", n)
	}
	sb.WriteString(md(counts))

	return sb.String()
}

// formatAlignedLine renders one line of word pairs as "word (translit)".
func formatAlignedLine(pairs []entities.WordPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		switch {
		case p.IsPunctuation:
			parts = append(parts, md(p.NativeWord))
		case p.NativeWord == "":
			parts = append(parts, italic(p.TransliteratedWord))
		case p.NativeWord == p.TransliteratedWord:
			parts = append(parts, md(p.NativeWord))
		default:
			parts = append(parts, md(p.NativeWord)+" "+italic("("+p.TransliteratedWord+")"))
		}
	}
	return strings.Join(parts, " ")
}

func formatVerse(prayerTitle string, v entities.Verse, lines [][]entities.WordPair) string {
	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("%s · %s", prayerTitle, v.Label())))
	sb.WriteString("\n\n")
	sb.WriteString(md(v.Text))
	sb.WriteString("\n\n")

	if v.HasTransliteration() {
		for _, line := range lines {
			sb.WriteString(formatAlignedLine(line))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(bold("Meaning: "))
	sb.WriteString(md(v.Meaning))
	if v.SimpleTranslation != "" {
		sb.WriteString("\n\n")
		sb.WriteString(bold("In simple words: "))
		sb.WriteString(md(v.SimpleTranslation))
	}
	sb.WriteString("\n\n")
	sb.WriteString(md("💡 " + v.Explanation))

	return sb.String()
}

func formatDailyVerse(dv entities.DailyVerse, lines [][]entities.WordPair) string {
	return md("🌅 Verse of the day") + "\n\n" + formatVerse(dv.PrayerTitle, dv.Verse, lines)
}

// formatQuizQuestion formats a quiz question (MarkdownV2 safe for question text).
func formatQuizQuestion(session *entities.QuizSession, q *entities.QuizQuestion) string {
	return fmt.Sprintf(
		"%s\n\n%s",
		md(fmt.Sprintf("🧠 %s · question %d of %d", session.PrayerTitle, session.Position+1, session.TotalQuestions())),
		bold(q.Question),
	)
}

// formatAnswerFeedback formats feedback for a quiz answer (MarkdownV2 safe).
func formatAnswerFeedback(isCorrect bool, q *entities.QuizQuestion) string {
	var head string
	if isCorrect {
		head = md("✅ Correct!")
	} else {
		head = md("❌ Not quite. The answer is ") + bold(q.CorrectAnswer())
	}
	return head + "\n\n" + md("💡 "+q.Explanation)
}

// formatQuizResult formats quiz results (MarkdownV2 safe).
func formatQuizResult(session *entities.QuizSession) string {
	total := session.AnsweredQuestions
	if total == 0 {
		return md("Quiz finished. Come back and try again soon!")
	}
	percentage := float64(session.CorrectAnswers) / float64(total) * 100

	emoji, message := "📚", "Keep learning, you are doing great!"
	switch {
	case percentage >= 90:
		emoji, message = "🌟", "Excellent! Hanuman ji would be proud!"
	case percentage >= 70:
		emoji, message = "👍", "Well done!"
	case percentage >= 50:
		emoji, message = "💪", "Good effort, keep going!"
	}

	return fmt.Sprintf(
		"%s %s\n\n%s %s\n%s\n\n%s",
		md(emoji),
		md("Quiz finished!"),
		md("Score:"),
		bold(fmt.Sprintf("%d/%d (%.0f%%)", session.CorrectAnswers, total, percentage)),
		md(buildProgressBar(session.CorrectAnswers, total, 10)),
		md(message),
	)
}

func formatReminderStatus(subscribed bool) string {
	if subscribed {
		return md("🔔 Daily reminders are ") + bold("on") + md(". I'll send you a verse every day.")
	}
	return md("🔕 Daily reminders are ") + bold("off") + md(".")
}

// buildReminderNotification builds reminder notification message.
func buildReminderNotification(payload entities.ReminderPayload, lines [][]entities.WordPair) string {
	var sb strings.Builder

	sb.WriteString(formatDailyVerse(payload.Verse, lines))
	sb.WriteString("\n\n")
	sb.WriteString("━━━━━━━━━━━━━━━━\n")

	switch {
	case payload.DoneToday:
		sb.WriteString(md(fmt.Sprintf("🔥 Streak: %d days. You already learned a verse today!", payload.CurrentStreak)))
	case payload.CurrentStreak > 0:
		sb.WriteString(md(fmt.Sprintf("🔥 Streak: %d days. Learn today's verse to keep it going!", payload.CurrentStreak)))
	default:
		sb.WriteString(md("Learn today's verse to start your streak!"))
	}

	return sb.String()
}
