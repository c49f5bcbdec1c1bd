package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizforge/quizforge-backend/internal/model"
)

// OptionRepository handles option data access.
type OptionRepository struct {
	pool *pgxpool.Pool
}

// NewOptionRepository creates a new OptionRepository.
func NewOptionRepository(pool *pgxpool.Pool) *OptionRepository {
	return &OptionRepository{pool: pool}
}

// Create inserts a single option. The caller assigns the ID.
func (r *OptionRepository) Create(ctx context.Context, o *model.Option) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO options (id, question_id, text) VALUES ($1, $2, $3)`,
		o.ID, o.QuestionID, o.Text)
	return err
}

// GetByID retrieves an option by its UUID. Returns pgx.ErrNoRows when absent.
func (r *OptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Option, error) {
	o := &model.Option{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, question_id, text FROM options WHERE id = $1`, id,
	).Scan(&o.ID, &o.QuestionID, &o.Text)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// ListByQuestion retrieves a question's options in insertion order.
func (r *OptionRepository) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]model.Option, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question_id, text FROM options WHERE question_id = $1
		 ORDER BY created_at, id`, questionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOptions(rows)
}

// ListByQuiz retrieves the options of every question of a quiz in one
// round trip, in insertion order. Callers group them by QuestionID.
func (r *OptionRepository) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.Option, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT o.id, o.question_id, o.text
		 FROM options o
		 JOIN questions q ON q.id = o.question_id
		 WHERE q.quiz_id = $1
		 ORDER BY o.created_at, o.id`, quizID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOptions(rows)
}

// IsCorrectReference reports whether any question currently points at the
// option as its correct answer.
func (r *OptionRepository) IsCorrectReference(ctx context.Context, id uuid.UUID) (bool, error) {
	var used bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM questions WHERE correct_option_id = $1)`, id,
	).Scan(&used)
	return used, err
}

// Delete removes an option row. Deleting an unknown id is a no-op.
func (r *OptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM options WHERE id = $1`, id)
	return err
}

func scanOptions(rows pgx.Rows) ([]model.Option, error) {
	var options []model.Option
	for rows.Next() {
		var o model.Option
		if err := rows.Scan(&o.ID, &o.QuestionID, &o.Text); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}
