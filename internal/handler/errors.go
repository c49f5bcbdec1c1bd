package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge-backend/internal/response"
	"github.com/quizforge/quizforge-backend/internal/service"
)

// failFromService maps service errors onto HTTP statuses and error codes.
// Anything unrecognized is a storage failure and surfaces as a generic 500;
// the cause is logged where it happened.
func failFromService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrQuizNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrQuizNotFound)
	case errors.Is(err, service.ErrQuestionNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrQuestionNotFound)
	case errors.Is(err, service.ErrOptionMismatch):
		response.Fail(c, http.StatusConflict, response.ErrOptionMismatch)
	case errors.Is(err, service.ErrCorrectOptionInUse):
		response.Fail(c, http.StatusConflict, response.ErrCorrectOptionInUse)
	case errors.Is(err, service.ErrCorrectIndexOutOfRange):
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
	case errors.Is(err, service.ErrUnresolvedCorrectOption):
		response.Fail(c, http.StatusInternalServerError, response.ErrDataIntegrity)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
