package service

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// BuildCorpus renders a prayer as newline-delimited text for the answer
// engine fallback.
func BuildCorpus(prayer *entities.Prayer) string {
	lines := []string{"Prayer: " + prayer.Title}
	if prayer.TitleHindi != "" {
		lines = append(lines, "Hindi Title: "+prayer.TitleHindi)
	}
	lines = append(lines,
		"Type: "+string(prayer.Type),
		"Category: "+string(prayer.Category),
		"Description: "+prayer.Description,
	)
	if prayer.AboutInfo != "" {
		lines = append(lines, "About: "+prayer.AboutInfo)
	}

	for _, v := range prayer.AllVerses() {
		lines = append(lines, fmt.Sprintf("Verse %d:", v.Number), "Hindi: "+v.Text)
		if v.HasTransliteration() {
			lines = append(lines, "Transliteration: "+v.Transliteration)
		}
		lines = append(lines,
			"Meaning: "+v.Meaning,
			"Simple Translation: "+v.SimpleTranslation,
			"Explanation: "+v.Explanation,
		)
	}

	return strings.Join(lines, "\n")
}
