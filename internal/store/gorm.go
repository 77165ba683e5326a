package store

import (
	"errors"
	"fmt"

	"trivia-backend/internal/models"

	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GormStore) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *GormStore) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *GormStore) QuestionsByCategory(categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("category = ?", categoryID).Order("id ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *GormStore) SearchQuestions(term string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("question ILIKE ?", "%"+term+"%").Order("id ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *GormStore) InsertQuestion(q *models.Question) error {
	if err := ValidateQuestion(q); err != nil {
		return err
	}
	if _, err := s.GetCategory(q.Category); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: category %d does not exist", ErrValidation, q.Category)
		}
		return err
	}
	return s.db.Create(q).Error
}

func (s *GormStore) DeleteQuestion(id uint) error {
	result := s.db.Delete(&models.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
