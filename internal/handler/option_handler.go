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

// OptionHandler handles individual option mutations.
type OptionHandler struct {
	questionService *service.QuestionService
}

// NewOptionHandler creates a new OptionHandler.
func NewOptionHandler(questionService *service.QuestionService) *OptionHandler {
	return &OptionHandler{questionService: questionService}
}

// Add godoc
// POST /question/:id/options
func (h *OptionHandler) Add(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.AddOptionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	option, err := h.questionService.AddOption(c.Request.Context(), questionID, req.Text)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, option)
}

// Delete godoc
// DELETE /option/:id
func (h *OptionHandler) Delete(c *gin.Context) {
	optionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.questionService.DeleteOption(c.Request.Context(), optionID); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true})
}
