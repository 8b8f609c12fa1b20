package entities

import (
	"sort"
	"time"

	json "github.com/goccy/go-json"
)

// VerseKeySet is a set of "{prayerTitle}-{verseNumber}" keys.
// It is encoded as a sorted JSON array so snapshots are stable.
type VerseKeySet map[string]struct{}

// Has reports whether key is in the set.
func (s VerseKeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the keys in ascending order.
func (s VerseKeySet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s VerseKeySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Keys())
}

func (s *VerseKeySet) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	set := make(VerseKeySet, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	*s = set
	return nil
}

// DailyVerseProgress tracks a learner's daily streak and learned verses.
type DailyVerseProgress struct {
	CurrentStreak      int         `json:"currentStreak"`      // consecutive calendar days with a completion
	LongestStreak      int         `json:"longestStreak"`      // best streak ever reached
	TotalVersesLearned int         `json:"totalVersesLearned"` // distinct verses completed
	LastCompletedDate  *time.Time  `json:"lastCompletedDate,omitempty"`
	CompletedVerses    VerseKeySet `json:"completedVerses"`
}

// NewDailyVerseProgress returns an empty progress record.
func NewDailyVerseProgress() *DailyVerseProgress {
	return &DailyVerseProgress{CompletedVerses: make(VerseKeySet)}
}

// MarkAsCompleted records a verse completion at now, using loc as the
// calendar. It reports whether the verse was completed for the first time.
//
// The streak grows when the previous completion was yesterday, restarts at 1
// after a gap and is left untouched for a second completion on the same day.
func (p *DailyVerseProgress) MarkAsCompleted(verse Verse, prayerTitle string, now time.Time, loc *time.Location) bool {
	if p.CompletedVerses == nil {
		p.CompletedVerses = make(VerseKeySet)
	}

	key := StatsKey(prayerTitle, verse.Number)
	firstTime := !p.CompletedVerses.Has(key)
	if firstTime {
		p.CompletedVerses[key] = struct{}{}
		p.TotalVersesLearned++
	}

	if p.LastCompletedDate == nil {
		p.CurrentStreak = 1
	} else {
		switch last := *p.LastCompletedDate; {
		case SameDay(last, now, loc):
			return firstTime
		case IsYesterday(last, now, loc):
			p.CurrentStreak++
		default:
			p.CurrentStreak = 1
		}
	}

	p.LongestStreak = max(p.LongestStreak, p.CurrentStreak)
	p.LastCompletedDate = &now

	return firstTime
}

// HasCompletedToday reports whether the last completion falls on now's day.
func (p *DailyVerseProgress) HasCompletedToday(now time.Time, loc *time.Location) bool {
	if p.LastCompletedDate == nil {
		return false
	}
	return SameDay(*p.LastCompletedDate, now, loc)
}
