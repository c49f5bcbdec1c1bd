package model

import (
	"github.com/google/uuid"
)

// Option is a selectable answer choice belonging to a question. The wire
// shape is {id, text}; the owning question is kept for grouping only.
type Option struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"-"`
	Text       string    `json:"text"`
}

// AddOptionRequest is the payload for appending one option to a question.
type AddOptionRequest struct {
	Text string `json:"text" binding:"required,min=1,max=2000"`
}
