package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quizforge/quizforge-backend/internal/config"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// QuestionService handles question and option business logic.
type QuestionService struct {
	quizRepo     *repository.QuizRepository
	questionRepo *repository.QuestionRepository
	optionRepo   *repository.OptionRepository
	rdb          *redis.Client
	log          zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	optionRepo *repository.OptionRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *QuestionService {
	return &QuestionService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		optionRepo:   optionRepo,
		rdb:          rdb,
		log:          log.With().Str("component", "question_service").Logger(),
	}
}

// AddBatch creates one question row and one option row per option string
// for every entry, in a single transaction. The option at correctIndex
// becomes the question's correct answer. Returns ErrQuizNotFound for an
// unknown quiz and ErrCorrectIndexOutOfRange before touching storage.
func (s *QuestionService) AddBatch(ctx context.Context, quizID uuid.UUID, questions []model.NewQuestionRequest) error {
	if _, err := s.quizRepo.GetByID(ctx, quizID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrQuizNotFound
		}
		return err
	}

	entries := make([]repository.BatchEntry, 0, len(questions))
	for i, q := range questions {
		idx := *q.CorrectIndex
		if idx >= len(q.Options) {
			return fmt.Errorf("question %d: %w", i, ErrCorrectIndexOutOfRange)
		}

		questionID := uuid.New()
		entry := repository.BatchEntry{
			Question: model.Question{
				ID:     questionID,
				QuizID: quizID,
				Text:   q.Text,
			},
			Options: make([]model.Option, 0, len(q.Options)),
		}
		for j, text := range q.Options {
			opt := model.Option{
				ID:         uuid.New(),
				QuestionID: questionID,
				Text:       text,
			}
			if j == idx {
				entry.Question.CorrectOptionID = opt.ID
			}
			entry.Options = append(entry.Options, opt)
		}
		entries = append(entries, entry)
	}

	if err := s.questionRepo.CreateBatch(ctx, entries); err != nil {
		return err
	}

	s.invalidateQuiz(ctx, quizID)
	s.log.Info().
		Str("quiz_id", quizID.String()).
		Int("count", len(entries)).
		Msg("Questions added")
	return nil
}

// DeleteQuestion removes a question and its options. Unknown ids succeed
// silently so the operation is safe to retry.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}

	if err := s.questionRepo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	s.invalidateQuiz(ctx, question.QuizID)
	return nil
}

// SetCorrectOption repoints a question's correct-option reference. Returns
// ErrQuestionNotFound for an unknown question and ErrOptionMismatch when
// the option is not one of the question's own options.
func (s *QuestionService) SetCorrectOption(ctx context.Context, questionID, optionID uuid.UUID) error {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrQuestionNotFound
		}
		return err
	}

	option, err := s.optionRepo.GetByID(ctx, optionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOptionMismatch
		}
		return err
	}
	if option.QuestionID != questionID {
		return ErrOptionMismatch
	}

	if err := s.questionRepo.SetCorrectOption(ctx, questionID, optionID); err != nil {
		return err
	}

	s.invalidateQuiz(ctx, question.QuizID)
	return nil
}

// AddOption appends one option to a question. Returns ErrQuestionNotFound
// for an unknown question.
func (s *QuestionService) AddOption(ctx context.Context, questionID uuid.UUID, text string) (*model.Option, error) {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	option := &model.Option{
		ID:         uuid.New(),
		QuestionID: questionID,
		Text:       text,
	}
	if err := s.optionRepo.Create(ctx, option); err != nil {
		return nil, err
	}

	s.invalidateQuiz(ctx, question.QuizID)
	return option, nil
}

// DeleteOption removes an option. Unknown ids succeed silently; deleting
// an option that is currently some question's correct answer returns
// ErrCorrectOptionInUse instead of orphaning the reference.
func (s *QuestionService) DeleteOption(ctx context.Context, id uuid.UUID) error {
	option, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}

	used, err := s.optionRepo.IsCorrectReference(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return ErrCorrectOptionInUse
	}

	if err := s.optionRepo.Delete(ctx, id); err != nil {
		return err
	}

	question, err := s.questionRepo.GetByID(ctx, option.QuestionID)
	if err == nil {
		s.invalidateQuiz(ctx, question.QuizID)
	}
	return nil
}

// invalidateQuiz drops the cached taker payload after a mutation. Failures
// are logged and swallowed; the cache repopulates on the next read.
func (s *QuestionService) invalidateQuiz(ctx context.Context, quizID uuid.UUID) {
	key := config.CacheKey.QuizPayloadKey(quizID.String())
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Warn().Err(err).Str("quiz_id", quizID.String()).Msg("Cache invalidation failed")
	}
}
