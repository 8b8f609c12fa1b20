package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		question string
		want     Rule
	}{
		{"What does verse 5 mean?", RuleVerse},
		{"Explain DOHA 2", RuleVerse},
		{"chaupai12", RuleVerse},
		{"What does this mean", RuleMeaning},
		{"what is the verse about", RuleMeaning},
		{"How to pronounce 3?", RulePronunciation},
		{"How do I learn it", RulePronunciation},
		{"When should I recite it?", RuleTiming},
		{"Why is it important?", RuleSignificance},
		{"How many verses are there?", RuleCount},
		{"Who wrote this?", RuleAuthor},
		{"Tell me about Sanjivani", RuleDefault},
		{"", RuleDefault},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.question), "question %q", tt.question)
	}
}

func TestExtractNumber(t *testing.T) {
	n, ok := extractNumber("verse 12 and 3")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	n, ok = extractNumber("v7")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = extractNumber("no digits")
	assert.False(t, ok)

	_, ok = extractNumber("99999999999999999999999")
	assert.False(t, ok)
}

func TestAnswer_VerseDetail(t *testing.T) {
	p := testPrayer("Hanuman Chalisa", entities.PrayerTypeChalisa, 2, 40, 1)
	v := verse(5)

	got := Answer("What does verse 5 mean?", p, "")

	want := "Verse 5 of Hanuman Chalisa:\n\n" +
		"Hindi: " + v.Text + "\n" +
		"\nPronunciation guide: " + v.Transliteration + "\n" +
		"\nMeaning: " + v.Meaning +
		"\n\nKid-friendly translation: " + v.SimpleTranslation +
		"\n\nExplanation: " + v.Explanation +
		"\n\nTip: Listen to this verse in the app and repeat along to remember it better!"
	assert.Equal(t, want, got)
}

func TestAnswer_VerseWithoutOptionalFields(t *testing.T) {
	p := testPrayer("Gayatri Mantra", entities.PrayerTypeMantra, 0, 1, 0)
	p.Verses[0].Transliteration = ""
	p.Verses[0].SimpleTranslation = ""

	got := Answer("line 1", p, "")
	assert.NotContains(t, got, "Pronunciation guide")
	assert.NotContains(t, got, "Kid-friendly translation")
	assert.Contains(t, got, "\nMeaning: "+p.Verses[0].Meaning+"\n\nExplanation: ")
}

func TestAnswer_VerseOutOfRange(t *testing.T) {
	p := testPrayer("Test Prayer", entities.PrayerTypeChalisa, 0, 40, 0)

	got := Answer("Tell me about verse 41", p, "")
	assert.Equal(t, "I couldn't find verse 41 in Test Prayer. Try asking about a verse between 1 and 40.", got)
}

func TestAnswer_Meaning(t *testing.T) {
	p := testPrayer("Test Prayer", entities.PrayerTypeAarti, 0, 3, 0)
	p.AboutInfo = "A. B. C."

	got := Answer("what does this mean", p, "")
	assert.Equal(t, "Test Prayer is A.\n\nIt contains 3 verses that help us connect with the divine and learn important spiritual lessons.", got)

	p.AboutInfo = "  "
	got = Answer("explain", p, "")
	assert.True(t, strings.HasPrefix(got, "Test Prayer is A prayer to Hanuman.\n\n"), got)
}

func TestAnswer_Pronunciation(t *testing.T) {
	p := testPrayer("Hanuman Aarti", entities.PrayerTypeAarti, 0, 12, 0)

	got := Answer("How to pronounce 3?", p, "")
	assert.Equal(t, "To pronounce Hanuman Aarti correctly:\n\n"+
		"For verse 3, here's how to pronounce it:\n\n"+
		"Transliteration: "+p.Verses[2].Transliteration+"\n\n"+
		"Try saying it slowly, syllable by syllable. The transliteration above shows you how each word sounds in English.", got)

	p.Verses[2].Transliteration = ""
	got = Answer("How to pronounce 3?", p, "")
	assert.Contains(t, got, "The Hindi text is: "+p.Verses[2].Text+"\n\nTry listening to the audio playback feature")

	got = Answer("How do I pronounce it?", p, "")
	assert.Equal(t, "To pronounce Hanuman Aarti correctly:\n\n"+pronunciationSteps, got)

	got = Answer("how to pronounce 99", p, "")
	assert.Equal(t, "To pronounce Hanuman Aarti correctly:\n\n"+pronunciationSteps, got)
}

func TestAnswer_Timing(t *testing.T) {
	tests := []struct {
		typ  entities.PrayerType
		want string
	}{
		{entities.PrayerTypeMantra, "• Morning: Best time is during sunrise"},
		{entities.PrayerTypeAarti, "• Evening: During sunset, traditional aarti time"},
		{entities.PrayerTypeChalisa, "• Tuesday and Saturday: Especially auspicious for Hanuman prayers"},
		{entities.PrayerTypeBaan, "• Tuesday and Saturday: Especially auspicious for Hanuman prayers"},
		{entities.PrayerTypeBhajan, "• Anytime: When you feel the need for spiritual connection"},
	}

	for _, tt := range tests {
		p := testPrayer("P", tt.typ, 0, 1, 0)
		got := Answer("When should I recite it?", p, "")

		assert.True(t, strings.HasPrefix(got, "You can recite P at these times:\n\n"))
		assert.Contains(t, got, tt.want, "type %s", tt.typ)
		assert.True(t, strings.HasSuffix(got, "Regular practice is more valuable than perfect timing!"))
	}
}

func TestAnswer_Significance(t *testing.T) {
	chalisa := testPrayer("Hanuman Chalisa", entities.PrayerTypeChalisa, 2, 40, 1)
	chalisa.AboutInfo = "Ignored. For the literal text."
	got := Answer("Why is it important?", chalisa, "")
	assert.Equal(t, "Hanuman Chalisa is significant because:\n\n"+chalisaSignificance+
		"By learning and reciting this prayer, you're keeping an ancient tradition alive and growing spiritually!", got)

	p := testPrayer("Hanuman Baan", entities.PrayerTypeBaan, 1, 42, 1)
	p.AboutInfo = "First point. Second point.  . Third point. Fourth point."
	got = Answer("what are the benefits", p, "")
	assert.Equal(t, "Hanuman Baan is significant because:\n\n"+
		"• First point.\n• Second point.\n• Third point.\n\n"+
		"By learning and reciting this prayer, you're keeping an ancient tradition alive and growing spiritually!", got)

	p.AboutInfo = ""
	got = Answer("purpose?", p, "")
	assert.Contains(t, got, genericSignificance)
}

func TestAnswer_Count(t *testing.T) {
	chalisa := testPrayer("Hanuman Chalisa", entities.PrayerTypeChalisa, 2, 40, 1)
	assert.Equal(t, "Hanuman Chalisa has 43 verses in total.\n\n"+
		"• Opening verses: 2\n• Main verses: 40\n• Closing verses: 1\n\n"+
		"You can learn each verse one at a time, or listen to the complete prayer!",
		Answer("How many verses are there?", chalisa, ""))

	aarti := testPrayer("Hanuman Aarti", entities.PrayerTypeAarti, 0, 12, 0)
	assert.Equal(t, "Hanuman Aarti has 12 verses in total.\n• Main verses: 12\n\n"+
		"You can learn each verse one at a time, or listen to the complete prayer!",
		Answer("count", aarti, ""))
}

func TestAnswer_Author(t *testing.T) {
	tests := map[string]string{
		"Hanuman Chalisa": "Hanuman Chalisa was composed by the great saint and poet Tulsidas",
		"Hanuman Baan":    "Hanuman Baan was composed by the great saint and poet Tulsidas",
		"Gayatri Mantra":  "Gayatri Mantra is one of the oldest and most sacred mantras",
		"Hanuman Aarti":   "Hanuman Aarti is a traditional devotional song",
		"Shiv Aarti":      "Shiv Aarti is a traditional prayer that has been passed down",
	}

	for title, prefix := range tests {
		p := testPrayer(title, entities.PrayerTypeAarti, 0, 1, 0)
		got := Answer("Who wrote this?", p, "")
		assert.True(t, strings.HasPrefix(got, prefix), got)
	}
}

func TestAnswer_DefaultFromCorpus(t *testing.T) {
	p := testPrayer("Hanuman Chalisa", entities.PrayerTypeChalisa, 0, 1, 0)
	corpus := "Prayer: Hanuman Chalisa\n\n   \nMeaning: Hanuman brought the Sanjivani herb\nExplanation: SANJIVANI saves Lakshman\nSanjivani again\nSanjivani fourth"

	got := Answer("Tell me about Sanjivani", p, corpus)
	assert.Equal(t, "Based on Hanuman Chalisa:\n\n"+
		"Meaning: Hanuman brought the Sanjivani herb\n\n"+
		"Explanation: SANJIVANI saves Lakshman\n\n"+
		"Sanjivani again\n\n"+
		"If you'd like more specific information, try asking about:\n"+
		"• The meaning of the prayer\n• How to pronounce it\n• When to recite it\n• Its significance", got)
}

func TestAnswer_GenericFallback(t *testing.T) {
	p := testPrayer("Hanuman Chalisa", entities.PrayerTypeChalisa, 2, 40, 1)
	want := "I understand you're asking about Hanuman Chalisa. This is a beautiful prayer with 43 verses. You can learn more by:\n\n" +
		"• Reading each verse and its explanation\n" +
		"• Listening to the audio playback\n" +
		"• Asking specific questions like 'What does this prayer mean?' or 'How do I pronounce verse 1?'"

	assert.Equal(t, want, Answer("", p, ""))
	assert.Equal(t, want, Answer("xyz abc", p, "some corpus"))
	assert.Equal(t, want, Answer("zzzz", p, ""))
}

func TestAnswer_NeverEmpty(t *testing.T) {
	p := testPrayer("P", entities.PrayerTypePooja, 0, 1, 0)
	for _, q := range []string{"", " ", "?", "verse", "line x", "1", "ॐ"} {
		assert.NotEmpty(t, Answer(q, p, ""), "question %q", q)
	}
}
