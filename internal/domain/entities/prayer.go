package entities

import (
	"errors"
	"fmt"
)

var (
	ErrPrayerWithoutVerses = errors.New("prayer has no verses")
	ErrUnknownPrayerType   = errors.New("unknown prayer type")
)

// PrayerType is the liturgical form of a prayer.
type PrayerType string

const (
	PrayerTypeChalisa PrayerType = "Chalisa"
	PrayerTypeAarti   PrayerType = "Aarti"
	PrayerTypePooja   PrayerType = "Pooja"
	PrayerTypeBhajan  PrayerType = "Bhajan"
	PrayerTypeMantra  PrayerType = "Mantra"
	PrayerTypeBaan    PrayerType = "Baan"
)

// Valid reports whether t is a known prayer type.
func (t PrayerType) Valid() bool {
	switch t {
	case PrayerTypeChalisa, PrayerTypeAarti, PrayerTypePooja,
		PrayerTypeBhajan, PrayerTypeMantra, PrayerTypeBaan:
		return true
	}
	return false
}

// PrayerCategory is the deity a prayer is dedicated to.
type PrayerCategory string

const (
	CategoryHanuman PrayerCategory = "Hanuman"
	CategoryLaxmi   PrayerCategory = "Laxmi"
	CategoryShiva   PrayerCategory = "Shiva"
	CategoryVishnu  PrayerCategory = "Vishnu"
	CategoryGanesh  PrayerCategory = "Ganesh"
	CategoryDurga   PrayerCategory = "Durga"
	CategoryKrishna PrayerCategory = "Krishna"
	CategoryRam     PrayerCategory = "Ram"
	CategoryGeneral PrayerCategory = "General"
)

// Prayer is an immutable devotional text with its verse lists.
// Nil opening or closing lists mean the prayer has no such section.
type Prayer struct {
	Title         string         `json:"title"`
	TitleHindi    string         `json:"titleHindi,omitempty"`
	Type          PrayerType     `json:"type"`
	Category      PrayerCategory `json:"category"`
	Description   string         `json:"description"`
	IconName      string         `json:"iconName,omitempty"`
	AboutInfo     string         `json:"aboutInfo,omitempty"`
	HasQuiz       bool           `json:"hasQuiz"`
	OpeningVerses []Verse        `json:"openingVerses,omitempty"`
	Verses        []Verse        `json:"verses"`
	ClosingVerses []Verse        `json:"closingVerses,omitempty"`
}

// TotalVerses counts opening, main and closing verses.
func (p *Prayer) TotalVerses() int {
	return len(p.OpeningVerses) + len(p.Verses) + len(p.ClosingVerses)
}

// AllVerses returns opening, main and closing verses in that order.
func (p *Prayer) AllVerses() []Verse {
	all := make([]Verse, 0, p.TotalVerses())
	all = append(all, p.OpeningVerses...)
	all = append(all, p.Verses...)
	all = append(all, p.ClosingVerses...)
	return all
}

// VerseByNumber returns the first verse with the given number.
func (p *Prayer) VerseByNumber(number int) (Verse, bool) {
	for _, v := range p.AllVerses() {
		if v.Number == number {
			return v, true
		}
	}
	return Verse{}, false
}

// DisplayTitle prefers the Hindi title when present.
func (p *Prayer) DisplayTitle() string {
	if p.TitleHindi != "" {
		return p.TitleHindi
	}
	return p.Title
}

// Validate checks the prayer type and every verse of the prayer.
func (p *Prayer) Validate() error {
	if !p.Type.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownPrayerType, p.Type)
	}
	if len(p.Verses) == 0 {
		return ErrPrayerWithoutVerses
	}
	for _, v := range p.AllVerses() {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
