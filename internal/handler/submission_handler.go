package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/response"
	"github.com/quizforge/quizforge-backend/internal/service"
	"github.com/quizforge/quizforge-backend/internal/validator"
)

// SubmissionHandler handles quiz submission grading.
type SubmissionHandler struct {
	scoringService *service.ScoringService
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(scoringService *service.ScoringService) *SubmissionHandler {
	return &SubmissionHandler{scoringService: scoringService}
}

// Submit godoc
// POST /quiz/:id/submit
// Grades a submission. The body is a JSON array of answers; an empty array
// is a valid submission (everything counts as unanswered).
func (h *SubmissionHandler) Submit(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	answers := []model.SubmissionAnswer{}
	if fields := validator.Bind(c, &answers); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, fields)
		return
	}

	result, err := h.scoringService.Score(c.Request.Context(), quizID, answers)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
