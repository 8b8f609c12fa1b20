package service

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// Rule names the branch of the answer engine that produced an answer.
type Rule string

const (
	RuleVerse         Rule = "verse"
	RuleMeaning       Rule = "meaning"
	RulePronunciation Rule = "pronunciation"
	RuleTiming        Rule = "timing"
	RuleSignificance  Rule = "significance"
	RuleCount         Rule = "count"
	RuleAuthor        Rule = "author"
	RuleDefault       Rule = "default"
)

// Rules in evaluation order. The verse rule comes first so that a question
// about the meaning of one verse is not answered with the prayer meaning.
var answerRules = []struct {
	rule     Rule
	keywords []string
}{
	{RuleVerse, []string{"verse", "line", "chaupai", "doha"}},
	{RuleMeaning, []string{"what does", "what is", "meaning", "explain"}},
	{RulePronunciation, []string{"how to", "how do", "pronounce", "pronunciation"}},
	{RuleTiming, []string{"when", "time", "recite", "chant", "say"}},
	{RuleSignificance, []string{"why", "significance", "important", "benefits", "purpose"}},
	{RuleCount, []string{"how many", "count", "verses", "lines"}},
	{RuleAuthor, []string{"who", "written", "author", "composed"}},
}

// Classify returns the first rule matching question.
func Classify(question string) Rule {
	q := strings.ToLower(question)
	for _, r := range answerRules {
		if !containsAny(q, r.keywords) {
			continue
		}
		if r.rule == RuleVerse {
			if _, ok := extractNumber(q); !ok {
				continue
			}
		}
		return r.rule
	}
	return RuleDefault
}

// Answer replies to a free-form question about prayer. It never fails:
// questions no rule understands get an answer built from matching corpus
// lines or a generic hint.
func Answer(question string, prayer *entities.Prayer, corpus string) string {
	q := strings.ToLower(question)

	switch Classify(question) {
	case RuleVerse:
		n, _ := extractNumber(q)
		return verseAnswer(n, prayer)
	case RuleMeaning:
		return meaningAnswer(prayer)
	case RulePronunciation:
		return pronunciationAnswer(q, prayer)
	case RuleTiming:
		return timingAnswer(prayer)
	case RuleSignificance:
		return significanceAnswer(prayer)
	case RuleCount:
		return countAnswer(prayer)
	case RuleAuthor:
		return authorAnswer(prayer)
	default:
		return defaultAnswer(question, prayer, corpus)
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// extractNumber returns the first run of ASCII digits in s.
func extractNumber(s string) (int, bool) {
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return 0, false
	}
	end := strings.IndexFunc(s[start:], func(r rune) bool { return !isDigit(r) })
	if end < 0 {
		end = len(s) - start
	}

	n, err := strconv.Atoi(s[start : start+end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func withPeriod(s string) string {
	if strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}

func verseAnswer(n int, prayer *entities.Prayer) string {
	verse, ok := prayer.VerseByNumber(n)
	if !ok {
		return fmt.Sprintf("I couldn't find verse %d in %s. Try asking about a verse between 1 and %d.",
			n, prayer.Title, prayer.TotalVerses())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Verse %d of %s:\n\n", n, prayer.Title)
	fmt.Fprintf(&b, "Hindi: %s\n", verse.Text)
	if verse.HasTransliteration() {
		fmt.Fprintf(&b, "\nPronunciation guide: %s\n", verse.Transliteration)
	}
	fmt.Fprintf(&b, "\nMeaning: %s", verse.Meaning)
	if verse.SimpleTranslation != "" {
		fmt.Fprintf(&b, "\n\nKid-friendly translation: %s", verse.SimpleTranslation)
	}
	if verse.Explanation != "" {
		fmt.Fprintf(&b, "\n\nExplanation: %s", verse.Explanation)
	}
	b.WriteString("\n\nTip: Listen to this verse in the app and repeat along to remember it better!")

	return b.String()
}

func meaningAnswer(prayer *entities.Prayer) string {
	var b strings.Builder
	b.WriteString(prayer.Title + " is ")

	if about := strings.TrimSpace(prayer.AboutInfo); about != "" {
		first, _, _ := strings.Cut(about, ". ")
		b.WriteString(withPeriod(strings.TrimSpace(first)))
	} else {
		b.WriteString(withPeriod(strings.TrimSpace(prayer.Description)))
	}

	fmt.Fprintf(&b, "\n\nIt contains %d verses that help us connect with the divine and learn important spiritual lessons.",
		prayer.TotalVerses())
	return b.String()
}

const pronunciationSteps = "1. Listen carefully to the audio playback - tap the 'Listen' button on any verse.\n" +
	"2. Read the transliteration (English spelling) below the Hindi text.\n" +
	"3. Practice saying each word slowly.\n" +
	"4. Repeat after the audio to match the pronunciation.\n\n" +
	"Remember: It's okay to make mistakes while learning! Keep practicing."

func pronunciationAnswer(question string, prayer *entities.Prayer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "To pronounce %s correctly:\n\n", prayer.Title)

	n, ok := extractNumber(question)
	if !ok {
		b.WriteString(pronunciationSteps)
		return b.String()
	}

	verse, found := prayer.VerseByNumber(n)
	if !found {
		b.WriteString(pronunciationSteps)
		return b.String()
	}

	fmt.Fprintf(&b, "For verse %d, here's how to pronounce it:\n\n", n)
	if verse.HasTransliteration() {
		fmt.Fprintf(&b, "Transliteration: %s\n\n", verse.Transliteration)
		b.WriteString("Try saying it slowly, syllable by syllable. The transliteration above shows you how each word sounds in English.")
	} else {
		fmt.Fprintf(&b, "The Hindi text is: %s\n\n", verse.Text)
		b.WriteString("Try listening to the audio playback feature - it will help you learn the correct pronunciation!")
	}
	return b.String()
}

var timingScripts = map[entities.PrayerType]string{
	entities.PrayerTypeMantra: "• Morning: Best time is during sunrise (Brahma Muhurta - around 4-6 AM)\n" +
		"• Evening: During sunset is also auspicious\n" +
		"• Before meals: To bless your food\n" +
		"• Anytime: When you need peace and focus\n\n",
	entities.PrayerTypeAarti: "• Morning: After waking up, to start your day with devotion\n" +
		"• Evening: During sunset, traditional aarti time\n" +
		"• Special occasions: Festivals and important days\n" +
		"• Daily practice: Morning and evening for best results\n\n",
	entities.PrayerTypeChalisa: hanumanTiming,
	entities.PrayerTypeBaan:    hanumanTiming,
}

const hanumanTiming = "• Morning: Start your day with devotion (best time)\n" +
	"• Evening: Before dinner or bedtime\n" +
	"• Tuesday and Saturday: Especially auspicious for Hanuman prayers\n" +
	"• When facing challenges: For strength and protection\n\n"

const defaultTiming = "• Morning: After waking up\n" +
	"• Evening: Before dinner\n" +
	"• Anytime: When you feel the need for spiritual connection\n\n"

func timingAnswer(prayer *entities.Prayer) string {
	script, ok := timingScripts[prayer.Type]
	if !ok {
		script = defaultTiming
	}

	return fmt.Sprintf("You can recite %s at these times:\n\n", prayer.Title) + script +
		"The most important thing is to recite with a pure heart and focus. Regular practice is more valuable than perfect timing!"
}

const chalisaSignificance = "• It contains 40 powerful chaupais (plus opening and closing dohas) that praise Hanuman ji’s strength, wisdom, and devotion.\n" +
	"• Each verse teaches a life lesson—courage, humility, discipline, service, and unwavering faith in Rama.\n" +
	"• Reciting it daily is believed to bring protection, confidence, and good health, especially on Tuesdays and Saturdays.\n" +
	"• It reminds us that with Hanuman ji’s blessings, even impossible-seeming problems can be solved.\n\n"

const genericSignificance = "• It helps us connect with the divine and express our devotion.\n" +
	"• Regular recitation brings peace, strength, and spiritual growth.\n" +
	"• It teaches us important values and life lessons.\n" +
	"• It connects us to our cultural and spiritual heritage.\n\n"

func significanceAnswer(prayer *entities.Prayer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is significant because:\n\n", prayer.Title)

	switch {
	case prayer.Title == "Hanuman Chalisa":
		b.WriteString(chalisaSignificance)
	case prayer.AboutInfo != "":
		points := 0
		for _, s := range strings.Split(prayer.AboutInfo, ". ") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			b.WriteString("• " + withPeriod(s) + "\n")
			if points++; points == 3 {
				break
			}
		}
		b.WriteString("\n")
	default:
		b.WriteString(genericSignificance)
	}

	b.WriteString("By learning and reciting this prayer, you're keeping an ancient tradition alive and growing spiritually!")
	return b.String()
}

func countAnswer(prayer *entities.Prayer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s has %d verses in total.", prayer.Title, prayer.TotalVerses())
	if len(prayer.OpeningVerses) > 0 {
		fmt.Fprintf(&b, "\n\n• Opening verses: %d", len(prayer.OpeningVerses))
	}
	fmt.Fprintf(&b, "\n• Main verses: %d", len(prayer.Verses))
	if len(prayer.ClosingVerses) > 0 {
		fmt.Fprintf(&b, "\n• Closing verses: %d", len(prayer.ClosingVerses))
	}
	b.WriteString("\n\nYou can learn each verse one at a time, or listen to the complete prayer!")
	return b.String()
}

var attributions = map[string]string{
	"Hanuman Chalisa": tulsidasAttribution,
	"Hanuman Baan":    tulsidasAttribution,
	"Gayatri Mantra": "is one of the oldest and most sacred mantras, found in the Rig Veda, which is over 3,500 years old. " +
		"It's considered a universal prayer for wisdom and enlightenment.",
	"Hanuman Aarti": "is a traditional devotional song, often attributed to various saints and poets over centuries. " +
		"It's been passed down through generations as part of our spiritual tradition.",
}

const tulsidasAttribution = "was composed by the great saint and poet Tulsidas, who lived in the 16th century. " +
	"Tulsidas wrote many devotional works in Hindi, making spiritual knowledge accessible to everyone."

const defaultAttribution = "is a traditional prayer that has been passed down through generations. " +
	"Its exact origin may vary, but it's an important part of our spiritual heritage."

func authorAnswer(prayer *entities.Prayer) string {
	attribution, ok := attributions[prayer.Title]
	if !ok {
		attribution = defaultAttribution
	}
	return prayer.Title + " " + attribution
}

const maxCorpusMatches = 3

func defaultAnswer(question string, prayer *entities.Prayer, corpus string) string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(question)) {
		if utf8.RuneCountInString(w) > 3 {
			words = append(words, w)
		}
	}

	var matches []string
	if len(words) > 0 {
		for _, line := range strings.Split(corpus, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if containsAny(strings.ToLower(line), words) {
				matches = append(matches, line)
				if len(matches) == maxCorpusMatches {
					break
				}
			}
		}
	}

	if len(matches) > 0 {
		return fmt.Sprintf("Based on %s:\n\n", prayer.Title) +
			strings.Join(matches, "\n\n") + "\n\n" +
			"If you'd like more specific information, try asking about:\n" +
			"• The meaning of the prayer\n" +
			"• How to pronounce it\n" +
			"• When to recite it\n" +
			"• Its significance"
	}

	return fmt.Sprintf("I understand you're asking about %s. ", prayer.Title) +
		fmt.Sprintf("This is a beautiful prayer with %d verses. ", prayer.TotalVerses()) +
		"You can learn more by:\n\n" +
		"• Reading each verse and its explanation\n" +
		"• Listening to the audio playback\n" +
		"• Asking specific questions like 'What does this prayer mean?' or 'How do I pronounce verse 1?'"
}
