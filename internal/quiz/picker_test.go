package quiz

import (
	"testing"

	"trivia-backend/internal/models"
)

func pool(ids ...uint) []models.Question {
	questions := make([]models.Question, 0, len(ids))
	for _, id := range ids {
		questions = append(questions, models.Question{ID: id})
	}
	return questions
}

// TestPickNeverRepeats draws many times and checks no served id ever comes
// back.
func TestPickNeverRepeats(t *testing.T) {
	questions := pool(1, 2, 3, 4, 5)
	previous := []uint{2, 4}

	for i := 0; i < 200; i++ {
		q, ok := Pick(questions, previous)
		if !ok {
			t.Fatal("expected a pick while unserved questions remain")
		}
		if q.ID == 2 || q.ID == 4 {
			t.Fatalf("picked already-served question %d", q.ID)
		}
	}
}

// TestPickSingleCandidate is deterministic: only one question remains.
func TestPickSingleCandidate(t *testing.T) {
	questions := pool(1, 2, 3)
	q, ok := Pick(questions, []uint{1, 2})
	if !ok {
		t.Fatal("expected a pick, got exhausted")
	}
	if q.ID != 3 {
		t.Fatalf("expected question 3, got %d", q.ID)
	}
}

func TestPickExhausted(t *testing.T) {
	questions := pool(1, 2, 3)
	if q, ok := Pick(questions, []uint{3, 1, 2}); ok {
		t.Fatalf("expected exhausted, got question %d", q.ID)
	}
	// Extra served ids beyond the pool make no difference.
	if q, ok := Pick(questions, []uint{1, 2, 3, 99}); ok {
		t.Fatalf("expected exhausted, got question %d", q.ID)
	}
}

func TestPickEmptyPool(t *testing.T) {
	if q, ok := Pick(nil, nil); ok {
		t.Fatalf("expected exhausted on empty pool, got question %d", q.ID)
	}
}

func TestPickNoPrevious(t *testing.T) {
	questions := pool(7)
	q, ok := Pick(questions, nil)
	if !ok {
		t.Fatal("expected a pick from a fresh pool")
	}
	if q.ID != 7 {
		t.Fatalf("expected question 7, got %d", q.ID)
	}
}
