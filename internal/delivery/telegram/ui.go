package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// buildPrayersKeyboard lists every prayer, one per row.
func buildPrayersKeyboard(prayers []*entities.Prayer) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(prayers))
	for i, p := range prayers {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📿 "+p.Title, buildPrayerCallback(i+1)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildPrayerKeyboard builds keyboard for the prayer overview.
func buildPrayerKeyboard(prayerIndex int, hasQuiz bool) tgbotapi.InlineKeyboardMarkup {
	row := tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📖 Read", buildVerseCallback(prayerIndex, 0)),
	)
	if hasQuiz {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("🧠 Quiz", buildQuizStartCallback(prayerIndex)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

// buildVerseKeyboard builds pagination keyboard for the verses of a prayer.
func buildVerseKeyboard(prayerIndex, pos, total, verseNumber int) tgbotapi.InlineKeyboardMarkup {
	var nav []tgbotapi.InlineKeyboardButton
	if pos > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", buildVerseCallback(prayerIndex, pos-1)))
	}
	nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d/%d", pos+1, total), buildPrayerCallback(prayerIndex)))
	if pos < total-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildVerseCallback(prayerIndex, pos+1)))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		nav,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ I learned it", buildLearnCallback(prayerIndex, verseNumber)),
		),
	)
}

// buildLearnKeyboard offers a single "learned" button.
func buildLearnKeyboard(prayerIndex, verseNumber int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ I learned it", buildLearnCallback(prayerIndex, verseNumber)),
		),
	)
}

// buildQuizAnswerKeyboard builds keyboard for quiz question.
func buildQuizAnswerKeyboard(q *entities.QuizQuestion) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options)+1)
	for i, option := range q.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, buildQuizAnswerCallback(i)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", buildQuizStopCallback()),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizFeedbackKeyboard follows an answered question.
func buildQuizFeedbackKeyboard(last bool) tgbotapi.InlineKeyboardMarkup {
	label := "Next question ▶️"
	if last {
		label = "🏁 See results"
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizNextCallback()),
		),
	)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard(prayerIndex int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Play again", buildQuizStartCallback(prayerIndex)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌅 Verse of the day", buildDailyCallback()),
		),
	)
}

// buildRemindKeyboard toggles the daily reminder.
func buildRemindKeyboard(subscribed bool) tgbotapi.InlineKeyboardMarkup {
	label := "🔔 Turn on"
	if subscribed {
		label = "🔕 Turn off"
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildRemindToggleCallback()),
		),
	)
}
