package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"trivia-backend/internal/models"
	"trivia-backend/internal/paging"
	"trivia-backend/internal/store"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	store store.Store
}

func NewCategoryHandler(store store.Store) *CategoryHandler {
	return &CategoryHandler{store: store}
}

type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"totalQuestions"`
	CurrentCategory string            `json:"currentCategory"`
}

// ListCategories godoc
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.store.ListCategories()
	if err != nil {
		abortWithStatus(c, http.StatusInternalServerError)
		return
	}
	if len(categories) == 0 {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	dict := make(map[uint]string, len(categories))
	for _, category := range categories {
		dict[category.ID] = category.Type
	}

	c.JSON(http.StatusOK, CategoriesResponse{Success: true, Categories: dict})
}

// ListQuestionsByCategory godoc
// @Summary      List the questions of one category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Param        page query int false "Page number (1-based)"
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/categories/{id}/questions [get]
func (h *CategoryHandler) ListQuestionsByCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	category, err := h.store.GetCategory(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithStatus(c, http.StatusNotFound)
		} else {
			abortWithStatus(c, http.StatusInternalServerError)
		}
		return
	}

	questions, err := h.store.QuestionsByCategory(uint(id))
	if err != nil {
		abortWithStatus(c, http.StatusInternalServerError)
		return
	}

	current := paging.Page(questions, pageParam(c))
	if current == nil {
		current = []models.Question{}
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	})
}
