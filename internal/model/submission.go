package model

import (
	"github.com/google/uuid"
)

// SubmissionAnswer is one (question, selected option) pair of a quiz
// submission. Submissions are transient; they are graded and discarded.
type SubmissionAnswer struct {
	QuestionID       uuid.UUID `json:"questionId" binding:"required"`
	SelectedOptionID uuid.UUID `json:"selectedOptionId" binding:"required"`
}

// AnswerDetail is the per-question breakdown of a graded submission.
// Selected is nil when the question was left unanswered or the submitted
// option does not belong to the question.
type AnswerDetail struct {
	Question  string   `json:"question"`
	Options   []Option `json:"options"`
	Selected  *string  `json:"selected"`
	Correct   string   `json:"correct"`
	IsCorrect bool     `json:"isCorrect"`
}

// SubmissionResult is the outcome of grading a submission.
type SubmissionResult struct {
	Score   int            `json:"score"`
	Total   int            `json:"total"`
	Details []AnswerDetail `json:"details"`
}
