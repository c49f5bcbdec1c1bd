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

// QuizHandler handles quiz CRUD and the two quiz detail views.
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// Create godoc
// POST /quiz
func (h *QuizHandler) Create(c *gin.Context) {
	var req model.CreateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	quiz, err := h.quizService.Create(c.Request.Context(), req.Title, req.TimeLimit)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, quiz)
}

// Update godoc
// PUT /quiz/:id
func (h *QuizHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	quiz, err := h.quizService.Update(c.Request.Context(), id, req.Title, req.TimeLimit)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, quiz)
}

// List godoc
// GET /quiz
func (h *QuizHandler) List(c *gin.Context) {
	quizzes, err := h.quizService.GetAll(c.Request.Context())
	if err != nil {
		failFromService(c, err)
		return
	}

	if quizzes == nil {
		quizzes = []model.Quiz{}
	}
	response.Success(c, http.StatusOK, quizzes)
}

// Delete godoc
// DELETE /quiz/:id
func (h *QuizHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.quizService.Delete(c.Request.Context(), id); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// GetQuestions godoc
// GET /quiz/:id/questions
// Taker view: time limit and questions without correct-option references.
func (h *QuizHandler) GetQuestions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	payload, err := h.quizService.GetPayload(c.Request.Context(), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, payload)
}

// GetFull godoc
// GET /quiz/:id/full
// Builder view: quiz with questions and their correct-option references.
func (h *QuizHandler) GetFull(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	detail, err := h.quizService.GetDetail(c.Request.Context(), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}
