// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"fmt"
)

var ErrEmptyVerseField = errors.New("verse text, meaning and explanation must not be empty")

// Verse is a single numbered stanza of a prayer.
// Opening and closing dohas use negative numbers: -1 and -2 precede the
// main verses, -3 follows them.
type Verse struct {
	Number            int    `json:"number"`                    // verse number, unique within a prayer
	Text              string `json:"text"`                      // native (Devanagari) text
	Meaning           string `json:"meaning"`                   // full English meaning
	SimpleTranslation string `json:"simpleTranslation"`         // kid-friendly translation, may be empty
	Explanation       string `json:"explanation"`               // kid-friendly explanation
	AudioFileName     string `json:"audioFileName,omitempty"`   // recording reference
	Transliteration   string `json:"transliteration,omitempty"` // romanized text, empty when absent
}

// NewVerse builds a verse and rejects it when a required field is empty.
func NewVerse(number int, text, meaning, simpleTranslation, explanation, transliteration string) (Verse, error) {
	v := Verse{
		Number:            number,
		Text:              text,
		Meaning:           meaning,
		SimpleTranslation: simpleTranslation,
		Explanation:       explanation,
		Transliteration:   transliteration,
	}
	if err := v.Validate(); err != nil {
		return Verse{}, err
	}
	return v, nil
}

// Validate checks the construction invariant of a verse.
func (v Verse) Validate() error {
	if v.Text == "" || v.Meaning == "" || v.Explanation == "" {
		return fmt.Errorf("verse %d: %w", v.Number, ErrEmptyVerseField)
	}
	return nil
}

// HasTransliteration reports whether a romanized text is available.
func (v Verse) HasTransliteration() bool {
	return v.Transliteration != ""
}

// Label returns "Doha N" for dohas and "Verse N" otherwise.
func (v Verse) Label() string {
	if v.Number < 0 {
		return fmt.Sprintf("Doha %d", -v.Number)
	}
	return fmt.Sprintf("Verse %d", v.Number)
}
