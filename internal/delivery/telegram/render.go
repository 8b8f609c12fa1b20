package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
	"github.com/aliskhannn/chalisa-kids-bot/internal/service"
)

// renderPrayer renders the overview of the prayer at 1-based index n and
// selects it for the chat.
func (h *Handler) renderPrayer(chatID int64, n int) (string, tgbotapi.InlineKeyboardMarkup, error) {
	prayer, err := h.prayerService.GetByIndex(n)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}
	h.selectPrayer(chatID, n)

	hasQuiz := prayer.HasQuiz && service.FamilyForTitle(prayer.Title) != service.FamilyNone
	return formatPrayer(prayer), buildPrayerKeyboard(n, hasQuiz), nil
}

// renderVerse renders the verse at position pos of all verses of prayer.
func (h *Handler) renderVerse(prayerIndex int, prayer *entities.Prayer, pos int) (string, tgbotapi.InlineKeyboardMarkup) {
	all := prayer.AllVerses()
	pos = max(0, min(pos, len(all)-1))
	v := all[pos]

	text := formatVerse(prayer.Title, v, h.prayerService.AlignVerse(v))
	return text, buildVerseKeyboard(prayerIndex, pos, len(all), v.Number)
}
