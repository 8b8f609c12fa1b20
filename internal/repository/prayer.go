package repository

import (
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/aliskhannn/chalisa-kids-bot/assets"
	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

var (
	ErrPrayerNotFound = errors.New("prayer not found")
	ErrNoPrayers      = errors.New("content has no prayers")
	ErrNullPrayer     = errors.New("content has a null prayer entry")
)

// PrayerRepository provides read-only access to the bundled prayers.
// Content is loaded and validated once; the returned records must not be mutated.
type PrayerRepository struct {
	prayers []*entities.Prayer
	byTitle map[string]*entities.Prayer
}

// NewPrayerRepository loads prayers from the JSON file at path, or from the
// embedded content when path is empty.
func NewPrayerRepository(path string) (*PrayerRepository, error) {
	data := assets.Prayers
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read prayers: %w", err)
		}
	}

	prayers, err := parsePrayers(data)
	if err != nil {
		return nil, err
	}

	byTitle := make(map[string]*entities.Prayer, len(prayers))
	for _, p := range prayers {
		byTitle[p.Title] = p
	}

	return &PrayerRepository{
		prayers: prayers,
		byTitle: byTitle,
	}, nil
}

// GetAll returns prayers in content order.
func (r *PrayerRepository) GetAll() []*entities.Prayer {
	return r.prayers
}

// GetByTitle returns the prayer with exactly the given title.
func (r *PrayerRepository) GetByTitle(title string) (*entities.Prayer, error) {
	p, ok := r.byTitle[title]
	if !ok {
		return nil, fmt.Errorf("%q: %w", title, ErrPrayerNotFound)
	}
	return p, nil
}

// GetByIndex returns the prayer at 1-based position n in content order.
func (r *PrayerRepository) GetByIndex(n int) (*entities.Prayer, error) {
	if n < 1 || n > len(r.prayers) {
		return nil, fmt.Errorf("index %d: %w", n, ErrPrayerNotFound)
	}
	return r.prayers[n-1], nil
}

func parsePrayers(data []byte) ([]*entities.Prayer, error) {
	var wrapper struct {
		Prayers []*entities.Prayer `json:"prayers"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prayers JSON: %w", err)
	}

	if len(wrapper.Prayers) == 0 {
		return nil, ErrNoPrayers
	}

	seen := make(map[string]struct{}, len(wrapper.Prayers))
	for i, p := range wrapper.Prayers {
		if p == nil {
			return nil, fmt.Errorf("prayer #%d: %w", i+1, ErrNullPrayer)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("prayer %q: %w", p.Title, err)
		}
		if _, dup := seen[p.Title]; dup {
			return nil, fmt.Errorf("duplicate prayer title %q", p.Title)
		}
		seen[p.Title] = struct{}{}
	}

	return wrapper.Prayers, nil
}
