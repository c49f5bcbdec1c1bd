package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quizforge/quizforge-backend/internal/config"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// QuizService handles quiz business logic and the Redis-cached taker view.
type QuizService struct {
	quizRepo         *repository.QuizRepository
	questionRepo     *repository.QuestionRepository
	optionRepo       *repository.OptionRepository
	rdb              *redis.Client
	defaultTimeLimit int
	log              zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	optionRepo *repository.OptionRepository,
	rdb *redis.Client,
	defaultTimeLimit int,
	log zerolog.Logger,
) *QuizService {
	return &QuizService{
		quizRepo:         quizRepo,
		questionRepo:     questionRepo,
		optionRepo:       optionRepo,
		rdb:              rdb,
		defaultTimeLimit: defaultTimeLimit,
		log:              log.With().Str("component", "quiz_service").Logger(),
	}
}

// Create inserts a new quiz with a fresh UUID. A nil timeLimit falls back
// to the configured default.
func (s *QuizService) Create(ctx context.Context, title string, timeLimit *int) (*model.Quiz, error) {
	quiz := &model.Quiz{
		ID:        uuid.New(),
		Title:     title,
		TimeLimit: s.defaultTimeLimit,
	}
	if timeLimit != nil {
		quiz.TimeLimit = *timeLimit
	}

	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// Update overwrites a quiz's title and time limit. Returns ErrQuizNotFound
// for an unknown id.
func (s *QuizService) Update(ctx context.Context, id uuid.UUID, title string, timeLimit int) (*model.Quiz, error) {
	quiz := &model.Quiz{ID: id, Title: title, TimeLimit: timeLimit}
	if err := s.quizRepo.Update(ctx, quiz); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	s.InvalidateCache(ctx, id)
	return quiz, nil
}

// GetAll retrieves every quiz ordered by title.
func (s *QuizService) GetAll(ctx context.Context) ([]model.Quiz, error) {
	return s.quizRepo.GetAll(ctx)
}

// Delete removes a quiz and everything it owns. Unknown ids succeed
// silently so the operation is safe to retry.
func (s *QuizService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.quizRepo.DeleteCascade(ctx, id); err != nil {
		return err
	}
	s.InvalidateCache(ctx, id)
	return nil
}

// GetPayload returns the taker-facing view of a quiz: its time limit and
// questions with the correct-option references stripped. The payload is
// served from Redis when cached; a cache miss or a Redis outage falls back
// to PostgreSQL. Returns ErrQuizNotFound for an unknown id.
func (s *QuizService) GetPayload(ctx context.Context, id uuid.UUID) (*model.QuizPayload, error) {
	key := config.CacheKey.QuizPayloadKey(id.String())

	if data, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var payload model.QuizPayload
		if err := json.Unmarshal(data, &payload); err == nil {
			return &payload, nil
		}
		s.log.Warn().Str("quiz_id", id.String()).Msg("Corrupt cached payload, rebuilding")
	} else if err != redis.Nil {
		s.log.Warn().Err(err).Msg("Redis read failed, serving from database")
	}

	quiz, questions, optionsByQuestion, err := s.loadQuiz(ctx, id)
	if err != nil {
		return nil, err
	}

	payload := &model.QuizPayload{
		TimeLimit: quiz.TimeLimit,
		Questions: make([]model.QuestionForUser, 0, len(questions)),
	}
	for _, q := range questions {
		payload.Questions = append(payload.Questions, model.QuestionForUser{
			ID:      q.ID,
			Text:    q.Text,
			Options: optionsOrEmpty(optionsByQuestion[q.ID]),
		})
	}

	if raw, err := json.Marshal(payload); err == nil {
		if err := s.rdb.Set(ctx, key, raw, 0).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Redis write failed")
		}
	}

	return payload, nil
}

// GetDetail returns the builder-facing view of a quiz including every
// correct-option reference. Returns ErrQuizNotFound for an unknown id.
func (s *QuizService) GetDetail(ctx context.Context, id uuid.UUID) (*model.QuizDetail, error) {
	quiz, questions, optionsByQuestion, err := s.loadQuiz(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &model.QuizDetail{
		ID:        quiz.ID,
		Title:     quiz.Title,
		TimeLimit: quiz.TimeLimit,
		Questions: make([]model.QuestionDetail, 0, len(questions)),
	}
	for _, q := range questions {
		detail.Questions = append(detail.Questions, model.QuestionDetail{
			ID:              q.ID,
			Text:            q.Text,
			CorrectOptionID: q.CorrectOptionID,
			Options:         optionsOrEmpty(optionsByQuestion[q.ID]),
		})
	}
	return detail, nil
}

// InvalidateCache drops the cached taker payload for a quiz. Failures are
// logged and swallowed; the cache repopulates on the next read.
func (s *QuizService) InvalidateCache(ctx context.Context, id uuid.UUID) {
	key := config.CacheKey.QuizPayloadKey(id.String())
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Warn().Err(err).Str("quiz_id", id.String()).Msg("Cache invalidation failed")
	}
}

// loadQuiz fetches a quiz, its questions in insertion order, and all their
// options grouped by question.
func (s *QuizService) loadQuiz(ctx context.Context, id uuid.UUID) (*model.Quiz, []model.Question, map[uuid.UUID][]model.Option, error) {
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil, ErrQuizNotFound
		}
		return nil, nil, nil, err
	}

	questions, err := s.questionRepo.ListByQuiz(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	options, err := s.optionRepo.ListByQuiz(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	return quiz, questions, groupOptions(options), nil
}

// groupOptions buckets options by their owning question, preserving order.
func groupOptions(options []model.Option) map[uuid.UUID][]model.Option {
	grouped := make(map[uuid.UUID][]model.Option)
	for _, o := range options {
		grouped[o.QuestionID] = append(grouped[o.QuestionID], o)
	}
	return grouped
}

// optionsOrEmpty keeps JSON serialization as [] instead of null.
func optionsOrEmpty(options []model.Option) []model.Option {
	if options == nil {
		return []model.Option{}
	}
	return options
}
