package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

func TestCachedAnswerer_MatchesAnswer(t *testing.T) {
	prayer := testPrayer("Hanuman Chalisa", entities.PrayerTypeChalisa, 2, 40, 1)
	a := NewCachedAnswerer(NewAnswerCache(true, 1))

	for _, q := range []string{
		"Explain verse 5",
		"What is this about?",
		"When should I recite it?",
		"Who wrote this?",
		"Tell me about wisdom",
	} {
		want := Answer(q, prayer, BuildCorpus(prayer))
		assert.Equal(t, want, a.Answer(q, prayer), q)
		assert.Equal(t, want, a.Answer(q, prayer), "cached %s", q)
	}
}

func TestCachedAnswerer_Metrics(t *testing.T) {
	prayer := testPrayer("Hanuman Aarti", entities.PrayerTypeAarti, 0, 12, 0)
	m := newCountingMetrics()
	a := NewCachedAnswerer(NewAnswerCache(true, 1), WithMetrics(m))

	a.Answer("Who wrote this?", prayer)
	a.Answer("  WHO WROTE THIS?  ", prayer)
	a.Answer("Explain verse 3", prayer)

	assert.Equal(t, 1, m.cacheHits)
	assert.Equal(t, 2, m.answers[string(RuleAuthor)])
	assert.Equal(t, 1, m.answers[string(RuleVerse)])
}

func TestCachedAnswerer_KeyedByPrayer(t *testing.T) {
	chalisa := testPrayer("Hanuman Chalisa", entities.PrayerTypeChalisa, 0, 40, 0)
	mantra := testPrayer("Gayatri Mantra", entities.PrayerTypeMantra, 0, 4, 0)
	a := NewCachedAnswerer(NewAnswerCache(true, 1))

	assert.Contains(t, a.Answer("Who wrote this?", chalisa), "Tulsidas")
	assert.NotContains(t, a.Answer("Who wrote this?", mantra), "Tulsidas")
}

func TestCachedAnswerer_Disabled(t *testing.T) {
	prayer := testPrayer("Hanuman Baan", entities.PrayerTypeBaan, 1, 42, 1)
	m := newCountingMetrics()

	for _, cache := range []AnswerCache{NewAnswerCache(false, 8), NewAnswerCache(true, 0), nil} {
		a := NewCachedAnswerer(cache, WithMetrics(m))
		a.Answer("How many verses?", prayer)
		a.Answer("How many verses?", prayer)
	}

	assert.Zero(t, m.cacheHits)
	assert.Equal(t, 6, m.answers[string(RuleCount)])
}
