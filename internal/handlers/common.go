package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Page not found"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "Page not found",
	http.StatusMethodNotAllowed:    "Invalid method",
	http.StatusUnprocessableEntity: "Unprocessable recource",
	http.StatusInternalServerError: "Internal server error",
}

func abortWithStatus(c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, ErrorResponse{Success: false, Error: code, Message: statusMessages[code]})
}

// NoRoute and NoMethod back gin's fallback handlers so unknown paths and
// wrong verbs share the uniform error body.
func NoRoute(c *gin.Context) {
	abortWithStatus(c, http.StatusNotFound)
}

func NoMethod(c *gin.Context) {
	abortWithStatus(c, http.StatusMethodNotAllowed)
}

// pageParam reads the 1-based page query parameter, defaulting to 1 on
// absence or garbage.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
