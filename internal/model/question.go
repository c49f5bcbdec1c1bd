package model

import (
	"time"

	"github.com/google/uuid"
)

// Question is a prompt belonging to a quiz. CorrectOptionID references one
// of the question's own options.
type Question struct {
	ID              uuid.UUID `json:"id"`
	QuizID          uuid.UUID `json:"quiz_id"`
	Text            string    `json:"text"`
	CorrectOptionID uuid.UUID `json:"correctOptionId"`
	CreatedAt       time.Time `json:"-"`
}

// QuestionForUser is a question without the correct-option reference,
// shown to a quiz taker.
type QuestionForUser struct {
	ID      uuid.UUID `json:"id"`
	Text    string    `json:"text"`
	Options []Option  `json:"options"`
}

// QuestionDetail is a question with its correct-option reference and
// options, shown in the builder view.
type QuestionDetail struct {
	ID              uuid.UUID `json:"id"`
	Text            string    `json:"text"`
	CorrectOptionID uuid.UUID `json:"correctOptionId"`
	Options         []Option  `json:"options"`
}

// NewQuestionRequest describes one question in a batch-add payload. The
// option at CorrectIndex becomes the question's correct answer.
type NewQuestionRequest struct {
	Text         string   `json:"text" binding:"required,min=1,max=2000"`
	Options      []string `json:"options" binding:"required,min=1,dive,required"`
	CorrectIndex *int     `json:"correctIndex" binding:"required,min=0"`
}

// AddQuestionsRequest is the payload for adding a batch of questions to a
// quiz. The whole batch is inserted in one transaction.
type AddQuestionsRequest struct {
	Questions []NewQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

// SetCorrectOptionRequest repoints a question's correct-option reference.
type SetCorrectOptionRequest struct {
	CorrectOptionID uuid.UUID `json:"correctOptionId" binding:"required"`
}
