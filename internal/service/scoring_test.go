package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge-backend/internal/model"
)

// buildQuiz returns two questions with three options each, the first
// option being the correct one, plus the grouped options map.
func buildQuiz(t *testing.T) ([]model.Question, map[uuid.UUID][]model.Option) {
	t.Helper()

	questions := make([]model.Question, 0, 2)
	optionsByQuestion := make(map[uuid.UUID][]model.Option)

	texts := []string{"Capital of France?", "Largest ocean?"}
	optionTexts := [][]string{
		{"Paris", "Lyon", "Nice"},
		{"Pacific", "Atlantic", "Indian"},
	}

	for i, text := range texts {
		q := model.Question{ID: uuid.New(), QuizID: uuid.New(), Text: text}
		for _, ot := range optionTexts[i] {
			opt := model.Option{ID: uuid.New(), QuestionID: q.ID, Text: ot}
			optionsByQuestion[q.ID] = append(optionsByQuestion[q.ID], opt)
		}
		q.CorrectOptionID = optionsByQuestion[q.ID][0].ID
		questions = append(questions, q)
	}

	return questions, optionsByQuestion
}

func TestGradeAllCorrect(t *testing.T) {
	questions, opts := buildQuiz(t)

	answers := make([]model.SubmissionAnswer, 0, len(questions))
	for _, q := range questions {
		answers = append(answers, model.SubmissionAnswer{
			QuestionID:       q.ID,
			SelectedOptionID: q.CorrectOptionID,
		})
	}

	result, err := grade(questions, opts, answers)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	if result.Score != len(questions) {
		t.Errorf("score = %d, want %d", result.Score, len(questions))
	}
	if result.Total != len(questions) {
		t.Errorf("total = %d, want %d", result.Total, len(questions))
	}
	for i, d := range result.Details {
		if !d.IsCorrect {
			t.Errorf("detail %d: isCorrect = false, want true", i)
		}
		if d.Selected == nil || *d.Selected != d.Correct {
			t.Errorf("detail %d: selected = %v, want %q", i, d.Selected, d.Correct)
		}
	}
}

func TestGradeEmptySubmission(t *testing.T) {
	questions, opts := buildQuiz(t)

	result, err := grade(questions, opts, nil)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	if result.Score != 0 {
		t.Errorf("score = %d, want 0", result.Score)
	}
	if result.Total != len(questions) {
		t.Errorf("total = %d, want %d", result.Total, len(questions))
	}
	for i, d := range result.Details {
		if d.IsCorrect {
			t.Errorf("detail %d: isCorrect = true, want false", i)
		}
		if d.Selected != nil {
			t.Errorf("detail %d: selected = %q, want nil", i, *d.Selected)
		}
	}
}

func TestGradeForeignOptionNeverCounts(t *testing.T) {
	questions, opts := buildQuiz(t)

	// Answer question 0 with question 1's correct option id. Even though
	// that id is a correct answer somewhere, it does not belong to
	// question 0 and must not count.
	answers := []model.SubmissionAnswer{
		{QuestionID: questions[0].ID, SelectedOptionID: questions[1].CorrectOptionID},
	}

	result, err := grade(questions, opts, answers)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	if result.Score != 0 {
		t.Errorf("score = %d, want 0", result.Score)
	}
	if d := result.Details[0]; d.Selected != nil {
		t.Errorf("detail 0: selected = %q, want nil", *d.Selected)
	}
}

func TestGradeIgnoresUnknownQuestionIDs(t *testing.T) {
	questions, opts := buildQuiz(t)

	answers := []model.SubmissionAnswer{
		{QuestionID: uuid.New(), SelectedOptionID: uuid.New()},
		{QuestionID: questions[0].ID, SelectedOptionID: questions[0].CorrectOptionID},
	}

	result, err := grade(questions, opts, answers)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	if result.Score != 1 {
		t.Errorf("score = %d, want 1", result.Score)
	}
	if result.Total != len(questions) {
		t.Errorf("total = %d, want %d", result.Total, len(questions))
	}
}

func TestGradeDetailOrderFollowsQuestions(t *testing.T) {
	questions, opts := buildQuiz(t)

	result, err := grade(questions, opts, nil)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}

	if len(result.Details) != len(questions) {
		t.Fatalf("details = %d, want %d", len(result.Details), len(questions))
	}
	for i, q := range questions {
		if result.Details[i].Question != q.Text {
			t.Errorf("detail %d: question = %q, want %q", i, result.Details[i].Question, q.Text)
		}
	}
}

func TestGradeUnresolvedCorrectOption(t *testing.T) {
	questions, opts := buildQuiz(t)

	// Point the first question's correct reference at an option id that
	// none of its rows carry.
	questions[0].CorrectOptionID = uuid.New()

	_, err := grade(questions, opts, nil)
	if !errors.Is(err, ErrUnresolvedCorrectOption) {
		t.Fatalf("err = %v, want ErrUnresolvedCorrectOption", err)
	}
}
