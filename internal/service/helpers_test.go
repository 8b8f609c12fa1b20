package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// fixedClock is a settable clock for tests.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock(t time.Time) *fixedClock { return &fixedClock{now: t} }

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// identityShuffle keeps options in table order.
func identityShuffle(int, func(i, j int)) {}

func verse(n int) entities.Verse {
	return entities.Verse{
		Number:            n,
		Text:              "जय हनुमान ज्ञान गुन सागर।",
		Meaning:           "Victory to Hanuman, the ocean of wisdom and virtue.",
		SimpleTranslation: "Hanuman is very wise.",
		Explanation:       "We praise Hanuman.",
		Transliteration:   "jaya hanumāna jñāna guna sāgara.",
	}
}

func testPrayer(title string, typ entities.PrayerType, opening, main, closing int) *entities.Prayer {
	p := &entities.Prayer{
		Title:       title,
		Type:        typ,
		Category:    entities.CategoryHanuman,
		Description: "A prayer to Hanuman",
		HasQuiz:     true,
	}
	for i := 1; i <= opening; i++ {
		p.OpeningVerses = append(p.OpeningVerses, verse(-i))
	}
	for i := 1; i <= main; i++ {
		p.Verses = append(p.Verses, verse(i))
	}
	for i := 1; i <= closing; i++ {
		p.ClosingVerses = append(p.ClosingVerses, verse(-(opening + i)))
	}
	return p
}

// memoryStatsRepo is an in-memory QuizStatsRepository counting saves.
type memoryStatsRepo struct {
	mu      sync.Mutex
	initial map[string]*entities.QuizStats
	saved   map[string]entities.QuizStats
	saves   int
	err     error
}

func (r *memoryStatsRepo) Load(context.Context) map[string]*entities.QuizStats {
	if r.initial == nil {
		return make(map[string]*entities.QuizStats)
	}
	return r.initial
}

func (r *memoryStatsRepo) Save(_ context.Context, stats map[string]*entities.QuizStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saves++
	if r.err != nil {
		return r.err
	}
	r.saved = make(map[string]entities.QuizStats, len(stats))
	for k, v := range stats {
		r.saved[k] = *v
	}
	return nil
}

type memoryProgressRepo struct {
	initial *entities.DailyVerseProgress
	saved   *entities.DailyVerseProgress
	saves   int
	err     error
}

func (r *memoryProgressRepo) Load(context.Context) *entities.DailyVerseProgress {
	if r.initial == nil {
		return entities.NewDailyVerseProgress()
	}
	return r.initial
}

func (r *memoryProgressRepo) Save(_ context.Context, p *entities.DailyVerseProgress) error {
	r.saves++
	if r.err != nil {
		return r.err
	}
	cp := *p
	r.saved = &cp
	return nil
}

// countingMetrics records events.
type countingMetrics struct {
	mu        sync.Mutex
	answers   map[string]int
	cacheHits int
	quiz      map[bool]int
	completed map[bool]int
	aligned   int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{
		answers:   make(map[string]int),
		quiz:      make(map[bool]int),
		completed: make(map[bool]int),
	}
}

func (m *countingMetrics) IncAnswers(rule string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answers[rule]++
}

func (m *countingMetrics) IncAnswerCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

func (m *countingMetrics) IncQuizAnswers(correct bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quiz[correct]++
}

func (m *countingMetrics) IncVersesCompleted(firstTime bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completed[firstTime]++
}

func (m *countingMetrics) IncAlignments() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aligned++
}

// staticPrayers is a PrayerRepository over a fixed list.
type staticPrayers []*entities.Prayer

func (s staticPrayers) GetAll() []*entities.Prayer { return s }

func (s staticPrayers) GetByTitle(title string) (*entities.Prayer, error) {
	for _, p := range s {
		if p.Title == title {
			return p, nil
		}
	}
	return nil, errPrayerNotFound
}

func (s staticPrayers) GetByIndex(n int) (*entities.Prayer, error) {
	if n < 1 || n > len(s) {
		return nil, errPrayerNotFound
	}
	return s[n-1], nil
}

var errPrayerNotFound = errors.New("prayer not found")
