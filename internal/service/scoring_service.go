package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ScoringService grades quiz submissions against the stored answer key.
type ScoringService struct {
	quizRepo     *repository.QuizRepository
	questionRepo *repository.QuestionRepository
	optionRepo   *repository.OptionRepository
	log          zerolog.Logger
}

// NewScoringService creates a new ScoringService.
func NewScoringService(
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	optionRepo *repository.OptionRepository,
	log zerolog.Logger,
) *ScoringService {
	return &ScoringService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		optionRepo:   optionRepo,
		log:          log.With().Str("component", "scoring_service").Logger(),
	}
}

// Score grades a submission for the given quiz. Returns ErrQuizNotFound
// for an unknown quiz and ErrUnresolvedCorrectOption when a question's
// stored correct reference does not match any of its options.
func (s *ScoringService) Score(ctx context.Context, quizID uuid.UUID, answers []model.SubmissionAnswer) (*model.SubmissionResult, error) {
	if _, err := s.quizRepo.GetByID(ctx, quizID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	questions, err := s.questionRepo.ListByQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	options, err := s.optionRepo.ListByQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	result, err := grade(questions, groupOptions(options), answers)
	if err != nil {
		s.log.Error().Err(err).Str("quiz_id", quizID.String()).Msg("Submission grading failed")
		return nil, err
	}

	s.log.Info().
		Str("quiz_id", quizID.String()).
		Int("score", result.Score).
		Int("total", result.Total).
		Msg("Submission graded")
	return result, nil
}

// grade walks the questions in storage order, matches each against the
// submitted answers, and accumulates the score and per-question details.
// Answers for question ids outside the quiz are ignored. An answer only
// counts when the submitted option id equals the question's correct option
// id; an option id from another question never matches.
func grade(questions []model.Question, optionsByQuestion map[uuid.UUID][]model.Option, answers []model.SubmissionAnswer) (*model.SubmissionResult, error) {
	selected := make(map[uuid.UUID]uuid.UUID, len(answers))
	for _, a := range answers {
		selected[a.QuestionID] = a.SelectedOptionID
	}

	result := &model.SubmissionResult{
		Total:   len(questions),
		Details: make([]model.AnswerDetail, 0, len(questions)),
	}

	for _, q := range questions {
		options := optionsOrEmpty(optionsByQuestion[q.ID])

		var correct *model.Option
		var chosen *model.Option
		for i := range options {
			if options[i].ID == q.CorrectOptionID {
				correct = &options[i]
			}
			if id, ok := selected[q.ID]; ok && options[i].ID == id {
				chosen = &options[i]
			}
		}

		if correct == nil {
			return nil, fmt.Errorf("question %s: %w", q.ID, ErrUnresolvedCorrectOption)
		}

		detail := model.AnswerDetail{
			Question:  q.Text,
			Options:   options,
			Correct:   correct.Text,
			IsCorrect: chosen != nil && chosen.ID == correct.ID,
		}
		if chosen != nil {
			detail.Selected = &chosen.Text
		}
		if detail.IsCorrect {
			result.Score++
		}

		result.Details = append(result.Details, detail)
	}

	return result, nil
}
