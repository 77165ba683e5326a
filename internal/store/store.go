// Package store gives ordered access to the trivia collections. Handlers
// depend on the Store interface; the gorm-backed implementation lives in
// gorm.go.
package store

import (
	"errors"
	"fmt"
	"strings"

	"trivia-backend/internal/models"
)

var (
	// ErrNotFound reports a missing category or question.
	ErrNotFound = errors.New("not found")
	// ErrValidation reports a question that cannot be inserted as given.
	ErrValidation = errors.New("invalid question")
)

type Store interface {
	ListCategories() ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	ListQuestions() ([]models.Question, error)
	QuestionsByCategory(categoryID uint) ([]models.Question, error)
	SearchQuestions(term string) ([]models.Question, error)
	InsertQuestion(q *models.Question) error
	DeleteQuestion(id uint) error
}

// ValidateQuestion checks the field-level constraints shared by every Store
// implementation. Category existence is the implementation's job.
func ValidateQuestion(q *models.Question) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("%w: question text is required", ErrValidation)
	}
	if strings.TrimSpace(q.Answer) == "" {
		return fmt.Errorf("%w: answer is required", ErrValidation)
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return fmt.Errorf("%w: difficulty must be between 1 and 5", ErrValidation)
	}
	return nil
}
