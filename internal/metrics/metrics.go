// Package metrics exposes prometheus counters for the learning features.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives events from the services.
type Recorder interface {
	IncAnswers(rule string)
	IncAnswerCacheHits()
	IncQuizAnswers(correct bool)
	IncVersesCompleted(firstTime bool)
	IncAlignments()
}

// Metrics is the prometheus-backed Recorder.
type Metrics struct {
	answersTotal         *prometheus.CounterVec
	answerCacheHitsTotal prometheus.Counter
	quizAnswersTotal     *prometheus.CounterVec
	versesCompleted      *prometheus.CounterVec
	alignmentsTotal      prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		answersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "answers_total",
			Help: "Answered questions by matched rule.",
		}, []string{"rule"}),

		answerCacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "answer_cache_hits_total",
			Help: "Answers served from the cache.",
		}),

		quizAnswersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quiz_answers_total",
			Help: "Recorded quiz answers by result.",
		}, []string{"result"}),

		versesCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "verses_completed_total",
			Help: "Verse completions, split by first-time credit.",
		}, []string{"first_time"}),

		alignmentsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "alignments_total",
			Help: "Word alignments computed.",
		}),
	}

	reg.MustRegister(
		m.answersTotal,
		m.answerCacheHitsTotal,
		m.quizAnswersTotal,
		m.versesCompleted,
		m.alignmentsTotal,
	)

	return m
}

func (m *Metrics) IncAnswers(rule string) {
	m.answersTotal.WithLabelValues(rule).Inc()
}

func (m *Metrics) IncAnswerCacheHits() {
	m.answerCacheHitsTotal.Inc()
}

func (m *Metrics) IncQuizAnswers(correct bool) {
	result := "incorrect"
	if correct {
		result = "correct"
	}
	m.quizAnswersTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncVersesCompleted(firstTime bool) {
	m.versesCompleted.WithLabelValues(strconv.FormatBool(firstTime)).Inc()
}

func (m *Metrics) IncAlignments() {
	m.alignmentsTotal.Inc()
}

// Noop discards all events.
type Noop struct{}

func (Noop) IncAnswers(string)       {}
func (Noop) IncAnswerCacheHits()     {}
func (Noop) IncQuizAnswers(bool)     {}
func (Noop) IncVersesCompleted(bool) {}
func (Noop) IncAlignments()          {}
