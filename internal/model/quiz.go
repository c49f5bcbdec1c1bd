package model

import (
	"time"

	"github.com/google/uuid"
)

// Quiz is a named, timed collection of questions.
type Quiz struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	TimeLimit int       `json:"time_limit"`
	CreatedAt time.Time `json:"-"`
}

// CreateQuizRequest is the payload for creating a new quiz.
// TimeLimit is optional; the configured default (60s) applies when omitted.
type CreateQuizRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=255"`
	TimeLimit *int   `json:"timeLimit" binding:"omitempty,min=1"`
}

// UpdateQuizRequest is the payload for updating a quiz. Both fields are
// overwritten unconditionally, so both must be present.
type UpdateQuizRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=255"`
	TimeLimit int    `json:"timeLimit" binding:"required,min=1"`
}

// QuizPayload is the taker-facing view of a quiz: its time limit and
// questions, with every correct-option reference stripped. This is the
// shape cached in Redis.
type QuizPayload struct {
	TimeLimit int               `json:"timeLimit"`
	Questions []QuestionForUser `json:"questions"`
}

// QuizDetail is the builder-facing view: the quiz row plus its questions
// including the correct-option references.
type QuizDetail struct {
	ID        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	TimeLimit int              `json:"time_limit"`
	Questions []QuestionDetail `json:"questions"`
}
