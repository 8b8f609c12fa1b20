package service

import (
	"errors"
	"fmt"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

var ErrVerseNotFound = errors.New("verse not found")

// PrayerService gives read access to the prayers and renders verses for display.
type PrayerService struct {
	repository PrayerRepository
	opts       options
}

func NewPrayerService(repository PrayerRepository, opts ...Option) *PrayerService {
	return &PrayerService{repository: repository, opts: newOptions(opts)}
}

func (s *PrayerService) GetAll() []*entities.Prayer {
	return s.repository.GetAll()
}

func (s *PrayerService) GetByTitle(title string) (*entities.Prayer, error) {
	return s.repository.GetByTitle(title)
}

func (s *PrayerService) GetByIndex(n int) (*entities.Prayer, error) {
	return s.repository.GetByIndex(n)
}

// GetVerse returns verse number n of the prayer with the given title.
func (s *PrayerService) GetVerse(title string, n int) (*entities.Prayer, entities.Verse, error) {
	prayer, err := s.repository.GetByTitle(title)
	if err != nil {
		return nil, entities.Verse{}, err
	}
	verse, ok := prayer.VerseByNumber(n)
	if !ok {
		return prayer, entities.Verse{}, fmt.Errorf("%s verse %d: %w", title, n, ErrVerseNotFound)
	}
	return prayer, verse, nil
}

// AlignVerse pairs the words of a verse with its transliteration. A verse
// without transliteration is aligned with itself.
func (s *PrayerService) AlignVerse(verse entities.Verse) [][]entities.WordPair {
	s.opts.metrics.IncAlignments()
	return Align(verse.Text, verse.Transliteration)
}
