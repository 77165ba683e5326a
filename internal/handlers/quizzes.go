package handlers

import (
	"net/http"

	"trivia-backend/internal/models"
	"trivia-backend/internal/quiz"
	"trivia-backend/internal/store"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	store store.Store
}

func NewQuizHandler(store store.Store) *QuizHandler {
	return &QuizHandler{store: store}
}

type QuizRequest struct {
	QuizCategory      QuizCategory `json:"quiz_category"`
	PreviousQuestions []uint       `json:"previous_questions"`
}

// QuizCategory selects the question pool; id 0 means every category.
type QuizCategory struct {
	ID uint `json:"id"`
}

// QuizResponse carries the next question, or a null question when every one
// in the pool has already been served.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *models.Question `json:"question"`
}

// Play godoc
// @Summary      Serve the next quiz question
// @Description  Picks a random question from the chosen category (0 for all) that is not in previous_questions.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz category and previously served question ids"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/quizzes [post]
func (h *QuizHandler) Play(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusBadRequest)
		return
	}

	var (
		pool []models.Question
		err  error
	)
	if req.QuizCategory.ID == 0 {
		pool, err = h.store.ListQuestions()
	} else {
		pool, err = h.store.QuestionsByCategory(req.QuizCategory.ID)
	}
	if err != nil {
		abortWithStatus(c, http.StatusInternalServerError)
		return
	}
	if len(pool) == 0 {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	question, _ := quiz.Pick(pool, req.PreviousQuestions)
	c.JSON(http.StatusOK, QuizResponse{Success: true, Question: question})
}
