package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizforge/quizforge-backend/internal/model"
)

// QuestionRepository handles question data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// BatchEntry pairs a question row with its option rows for the
// all-or-nothing batch insert.
type BatchEntry struct {
	Question model.Question
	Options  []model.Option
}

// ListByQuiz retrieves all questions of a quiz in insertion order.
func (r *QuestionRepository) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, quiz_id, text, correct_option_id, created_at
		 FROM questions WHERE quiz_id = $1
		 ORDER BY created_at, id`, quizID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.QuizID, &q.Text, &q.CorrectOptionID, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// GetByID retrieves a question by its UUID. Returns pgx.ErrNoRows when absent.
func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	q := &model.Question{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, quiz_id, text, correct_option_id, created_at FROM questions WHERE id = $1`, id,
	).Scan(&q.ID, &q.QuizID, &q.Text, &q.CorrectOptionID, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// CreateBatch inserts a batch of questions and their options in one
// transaction. Any failure rolls the whole batch back; no partial state
// becomes visible and the connection is returned on every path.
func (r *QuestionRepository) CreateBatch(ctx context.Context, entries []BatchEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		if _, err := tx.Exec(ctx,
			`INSERT INTO questions (id, quiz_id, text, correct_option_id) VALUES ($1, $2, $3, $4)`,
			e.Question.ID, e.Question.QuizID, e.Question.Text, e.Question.CorrectOptionID); err != nil {
			return err
		}
		for _, opt := range e.Options {
			if _, err := tx.Exec(ctx,
				`INSERT INTO options (id, question_id, text) VALUES ($1, $2, $3)`,
				opt.ID, opt.QuestionID, opt.Text); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

// SetCorrectOption repoints a question's correct-option reference.
func (r *QuestionRepository) SetCorrectOption(ctx context.Context, questionID, optionID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE questions SET correct_option_id = $1 WHERE id = $2`,
		optionID, questionID)
	return err
}

// DeleteCascade removes a question and its options in a single
// transaction. Deleting an unknown id is a no-op.
func (r *QuestionRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM options WHERE question_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
