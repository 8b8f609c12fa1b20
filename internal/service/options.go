package service

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/metrics"
)

// Option configures the stateful services.
type Option func(*options)

type options struct {
	now     func() time.Time
	loc     *time.Location
	shuffle Shuffler
	metrics MetricsRecorder
	logger  *zap.Logger
}

func newOptions(opts []Option) options {
	o := options{
		now:     time.Now,
		loc:     time.Local,
		shuffle: rand.Shuffle,
		metrics: metrics.Noop{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLocation sets the calendar used for day arithmetic.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.loc = loc
		}
	}
}

// WithShuffler replaces the option shuffler of quiz questions.
func WithShuffler(shuffle Shuffler) Option {
	return func(o *options) { o.shuffle = shuffle }
}

func WithMetrics(m MetricsRecorder) Option {
	return func(o *options) { o.metrics = m }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}
