package service

import (
	"math/rand/v2"
	"slices"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// Shuffler permutes n elements through swap, like rand.Shuffle.
type Shuffler func(n int, swap func(i, j int))

// shuffleOptions returns a copy of q with its options permuted and the
// correct index moved to the first option equal to the original correct
// text.
func shuffleOptions(q entities.QuizQuestion, shuffle Shuffler) entities.QuizQuestion {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}

	correct := q.Options[q.CorrectAnswerIndex]

	options := slices.Clone(q.Options)
	shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	q.Options = options
	q.CorrectAnswerIndex = max(slices.Index(options, correct), 0)
	return q
}
