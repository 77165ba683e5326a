package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"trivia-backend/internal/models"
	"trivia-backend/internal/paging"
	"trivia-backend/internal/store"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	store store.Store
}

func NewQuestionHandler(store store.Store) *QuestionHandler {
	return &QuestionHandler{store: store}
}

type QuestionListResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"totalQuestions"`
	Categories      map[uint]string   `json:"categories"`
	CurrentCategory *string           `json:"currentCategory"`
}

type SearchResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"totalQuestions"`
	CurrentCategory *string           `json:"currentCategory"`
}

// QuestionPostRequest is the body of POST /api/questions. A present,
// non-empty searchTerm selects the search variant; otherwise the remaining
// fields describe a question to create.
type QuestionPostRequest struct {
	SearchTerm *string `json:"searchTerm"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   uint    `json:"category"`
	Difficulty int     `json:"difficulty"`
}

// ListQuestions godoc
// @Summary      List questions, paginated
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Success      200 {object} QuestionListResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	selection, err := h.store.ListQuestions()
	if err != nil {
		abortWithStatus(c, http.StatusInternalServerError)
		return
	}

	current := paging.Page(selection, pageParam(c))
	if len(current) == 0 {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	categories, err := h.store.ListCategories()
	if err != nil {
		abortWithStatus(c, http.StatusInternalServerError)
		return
	}
	dict := make(map[uint]string, len(categories))
	for _, category := range categories {
		dict[category.ID] = category.Type
	}

	c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  len(selection),
		Categories:      dict,
		CurrentCategory: nil,
	})
}

// SearchOrCreate godoc
// @Summary      Search questions or create a new one
// @Description  With a searchTerm the body is a case-insensitive substring search; without one it creates a question.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body QuestionPostRequest true "Search term or question fields"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /api/questions [post]
func (h *QuestionHandler) SearchOrCreate(c *gin.Context) {
	var req QuestionPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	if req.SearchTerm != nil && *req.SearchTerm != "" {
		h.search(c, *req.SearchTerm)
		return
	}
	h.create(c, models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
}

func (h *QuestionHandler) search(c *gin.Context, term string) {
	matches, err := h.store.SearchQuestions(term)
	if err != nil {
		abortWithStatus(c, http.StatusInternalServerError)
		return
	}
	if len(matches) == 0 {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	current := paging.Page(matches, pageParam(c))
	if current == nil {
		current = []models.Question{}
	}

	c.JSON(http.StatusOK, SearchResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  len(matches),
		CurrentCategory: nil,
	})
}

func (h *QuestionHandler) create(c *gin.Context, question models.Question) {
	if err := h.store.InsertQuestion(&question); err != nil {
		// Every creation failure surfaces as 422.
		slog.Warn("question rejected", "error", err)
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} SuccessResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteQuestion(uint(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			abortWithStatus(c, http.StatusNotFound)
		} else {
			abortWithStatus(c, http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
