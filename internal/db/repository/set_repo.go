package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/examgenius/exam-platform/internal/generate"
)

// SetRepository persists question sets, with the questions themselves
// stored as a JSONB document.
type SetRepository struct {
	pool *pgxpool.Pool
}

var _ generate.SetStore = (*SetRepository)(nil)

func NewSetRepository(pool *pgxpool.Pool) *SetRepository {
	return &SetRepository{pool: pool}
}

func (r *SetRepository) CreateSet(ctx context.Context, set generate.QuestionSet) error {
	payload, err := json.Marshal(set.Questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO question_sets (set_id, owner_id, questions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		set.ID, set.OwnerID, payload, set.CreatedAt, set.UpdatedAt,
	)
	return err
}

func (r *SetRepository) GetSet(ctx context.Context, id string) (generate.QuestionSet, error) {
	var (
		set     generate.QuestionSet
		payload []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT set_id, owner_id, questions, created_at, updated_at
		FROM question_sets WHERE set_id = $1`, id,
	).Scan(&set.ID, &set.OwnerID, &payload, &set.CreatedAt, &set.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return generate.QuestionSet{}, generate.ErrSetNotFound
		}
		return generate.QuestionSet{}, err
	}
	if err := json.Unmarshal(payload, &set.Questions); err != nil {
		return generate.QuestionSet{}, fmt.Errorf("decode questions: %w", err)
	}
	return set, nil
}

func (r *SetRepository) ReplaceQuestions(ctx context.Context, id string, questions []generate.Question, updatedAt time.Time) error {
	payload, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE question_sets SET questions = $2, updated_at = $3 WHERE set_id = $1`,
		id, payload, updatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return generate.ErrSetNotFound
	}
	return nil
}

func (r *SetRepository) ListSetsByOwner(ctx context.Context, ownerID string) ([]generate.QuestionSet, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT set_id, owner_id, questions, created_at, updated_at
		FROM question_sets WHERE owner_id = $1
		ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []generate.QuestionSet
	for rows.Next() {
		var (
			set     generate.QuestionSet
			payload []byte
		)
		if err := rows.Scan(&set.ID, &set.OwnerID, &payload, &set.CreatedAt, &set.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &set.Questions); err != nil {
			return nil, fmt.Errorf("decode questions for %s: %w", set.ID, err)
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}
