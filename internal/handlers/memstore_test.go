package handlers

import (
	"fmt"
	"strings"

	"trivia-backend/internal/models"
	"trivia-backend/internal/store"
)

// memStore implements store.Store in memory so handler tests run without a
// database. Questions are kept in id order, matching the gorm store.
type memStore struct {
	categories []models.Category
	questions  []models.Question
	nextID     uint
}

func newMemStore() *memStore {
	return &memStore{
		categories: []models.Category{
			{ID: 1, Type: "Science"},
			{ID: 2, Type: "Art"},
			{ID: 3, Type: "Geography"},
			{ID: 4, Type: "History"},
			{ID: 5, Type: "Entertainment"},
			{ID: 6, Type: "Sports"},
		},
		questions: []models.Question{
			{ID: 1, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
			{ID: 2, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
			{ID: 3, Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: 1, Difficulty: 4},
			{ID: 4, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
			{ID: 5, Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: 2, Difficulty: 4},
			{ID: 6, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
			{ID: 7, Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: 3, Difficulty: 2},
			{ID: 8, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
			{ID: 9, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
			{ID: 10, Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: 4, Difficulty: 2},
			{ID: 11, Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
			{ID: 12, Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
		},
		nextID: 13,
	}
}

func (m *memStore) ListCategories() ([]models.Category, error) {
	return append([]models.Category(nil), m.categories...), nil
}

func (m *memStore) GetCategory(id uint) (*models.Category, error) {
	for _, category := range m.categories {
		if category.ID == id {
			c := category
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) ListQuestions() ([]models.Question, error) {
	return append([]models.Question(nil), m.questions...), nil
}

func (m *memStore) QuestionsByCategory(categoryID uint) ([]models.Question, error) {
	var out []models.Question
	for _, q := range m.questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memStore) SearchQuestions(term string) ([]models.Question, error) {
	term = strings.ToLower(term)
	var out []models.Question
	for _, q := range m.questions {
		if strings.Contains(strings.ToLower(q.Question), term) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memStore) InsertQuestion(q *models.Question) error {
	if err := store.ValidateQuestion(q); err != nil {
		return err
	}
	if _, err := m.GetCategory(q.Category); err != nil {
		return fmt.Errorf("%w: category %d does not exist", store.ErrValidation, q.Category)
	}
	q.ID = m.nextID
	m.nextID++
	m.questions = append(m.questions, *q)
	return nil
}

func (m *memStore) DeleteQuestion(id uint) error {
	for i, q := range m.questions {
		if q.ID == id {
			m.questions = append(m.questions[:i], m.questions[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
