// Package quiz selects the next question to play.
package quiz

import (
	"math/rand"

	"trivia-backend/internal/models"
)

// Pick chooses uniformly at random among the questions in pool whose id is
// not in previous. The second return is false when every question in pool has
// already been served. The pool is filtered first, so a pick never repeats
// and always terminates regardless of how much of the pool was served.
func Pick(pool []models.Question, previous []uint) (*models.Question, bool) {
	served := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		served[id] = struct{}{}
	}

	candidates := make([]models.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := served[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}

	q := candidates[rand.Intn(len(candidates))]
	return &q, true
}
