package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizforge/quizforge-backend/internal/model"
)

// QuizRepository handles quiz data access.
type QuizRepository struct {
	pool *pgxpool.Pool
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

// Create inserts a new quiz. The caller assigns the ID.
func (r *QuizRepository) Create(ctx context.Context, q *model.Quiz) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO quizzes (id, title, time_limit) VALUES ($1, $2, $3) RETURNING created_at`,
		q.ID, q.Title, q.TimeLimit).Scan(&q.CreatedAt)
}

// GetByID retrieves a quiz by its UUID. Returns pgx.ErrNoRows when absent.
func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	q := &model.Quiz{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, time_limit, created_at FROM quizzes WHERE id = $1`, id,
	).Scan(&q.ID, &q.Title, &q.TimeLimit, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// GetAll retrieves every quiz ordered by title.
func (r *QuizRepository) GetAll(ctx context.Context) ([]model.Quiz, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, time_limit, created_at FROM quizzes ORDER BY title ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []model.Quiz
	for rows.Next() {
		var q model.Quiz
		if err := rows.Scan(&q.ID, &q.Title, &q.TimeLimit, &q.CreatedAt); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

// Update overwrites a quiz's title and time limit. Returns pgx.ErrNoRows
// when the quiz does not exist.
func (r *QuizRepository) Update(ctx context.Context, q *model.Quiz) error {
	return r.pool.QueryRow(ctx,
		`UPDATE quizzes SET title = $1, time_limit = $2 WHERE id = $3
		 RETURNING id, title, time_limit`,
		q.Title, q.TimeLimit, q.ID).Scan(&q.ID, &q.Title, &q.TimeLimit)
}

// DeleteCascade removes a quiz together with its questions and their
// options in a single transaction. Deleting an unknown id is a no-op.
func (r *QuizRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM options WHERE question_id IN (SELECT id FROM questions WHERE quiz_id = $1)`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM questions WHERE quiz_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
