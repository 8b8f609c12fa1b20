package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

func TestAlignedLine(t *testing.T) {
	out := AlignedLine([]entities.WordPair{
		{NativeWord: "जय", TransliteratedWord: "jaya"},
		{NativeWord: "हनुमान", TransliteratedWord: "hanumāna"},
	})

	rows := strings.Split(out, "\n")
	assert.Len(t, rows, 2)
	assert.Contains(t, rows[0], "जय")
	assert.Contains(t, rows[0], "हनुमान")
	assert.Contains(t, rows[1], "jaya")
	assert.Contains(t, rows[1], "hanumāna")
	assert.Less(t, strings.Index(rows[1], "jaya"), strings.Index(rows[1], "hanumāna"))

	assert.Empty(t, AlignedLine(nil))
}

func TestVerse(t *testing.T) {
	v := entities.Verse{Number: 3, Text: "महाबीर", Meaning: "Great hero", Explanation: "Hanuman is brave."}
	out := Verse("Hanuman Chalisa", v, nil)

	assert.Contains(t, out, "Hanuman Chalisa · Verse 3")
	assert.Contains(t, out, "महाबीर")
	assert.Contains(t, out, "Great hero")
	assert.NotContains(t, out, "In simple words")
}

func TestHeading(t *testing.T) {
	assert.Contains(t, Heading(IconPrayer, "Prayers"), IconPrayer+" Prayers")
	assert.Contains(t, Heading("", "Prayers"), "Prayers")
	assert.Contains(t, LabelValue("Streak", 3), "3")
}
