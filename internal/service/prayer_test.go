package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

func TestPrayerService_Lookup(t *testing.T) {
	prayers := twoPrayers()
	s := NewPrayerService(prayers)

	assert.Len(t, s.GetAll(), 2)

	p, err := s.GetByIndex(2)
	require.NoError(t, err)
	assert.Equal(t, "Gayatri Mantra", p.Title)

	_, err = s.GetByIndex(3)
	assert.Error(t, err)

	p, err = s.GetByTitle("Hanuman Aarti")
	require.NoError(t, err)
	assert.Same(t, prayers[0], p)
}

func TestPrayerService_GetVerse(t *testing.T) {
	s := NewPrayerService(twoPrayers())

	p, v, err := s.GetVerse("Hanuman Aarti", 2)
	require.NoError(t, err)
	assert.Equal(t, "Hanuman Aarti", p.Title)
	assert.Equal(t, 2, v.Number)

	_, v, err = s.GetVerse("Hanuman Aarti", -1)
	require.NoError(t, err)
	assert.Equal(t, -1, v.Number)

	p, _, err = s.GetVerse("Hanuman Aarti", 9)
	assert.ErrorIs(t, err, ErrVerseNotFound)
	assert.NotNil(t, p)

	_, _, err = s.GetVerse("Shiv Chalisa", 1)
	assert.ErrorIs(t, err, errPrayerNotFound)
}

func TestPrayerService_AlignVerse(t *testing.T) {
	m := newCountingMetrics()
	s := NewPrayerService(twoPrayers(), WithMetrics(m))

	lines := s.AlignVerse(entities.Verse{Text: "जय हनुमान", Transliteration: "jaya hanumāna"})
	require.Len(t, lines, 1)
	assert.Equal(t, []entities.WordPair{
		{NativeWord: "जय", TransliteratedWord: "jaya"},
		{NativeWord: "हनुमान", TransliteratedWord: "hanumāna"},
	}, lines[0])

	lines = s.AlignVerse(entities.Verse{Text: "जय हनुमान"})
	assert.Equal(t, "जय", lines[0][0].TransliteratedWord)

	assert.Equal(t, 2, m.aligned)
}
