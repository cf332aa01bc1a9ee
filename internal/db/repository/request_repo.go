package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/examgenius/exam-platform/internal/generate"
)

// RequestRepository persists generation requests in Postgres.
type RequestRepository struct {
	pool *pgxpool.Pool
}

var _ generate.RequestStore = (*RequestRepository)(nil)

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func (r *RequestRepository) CreateRequest(ctx context.Context, req generate.Request) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO generation_requests (request_id, owner_id, status, progress_pct, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		req.ID, req.OwnerID, req.Status, req.ProgressPct, req.CreatedAt, req.UpdatedAt,
	)
	return err
}

func (r *RequestRepository) GetRequest(ctx context.Context, id string) (generate.Request, error) {
	var (
		req    generate.Request
		errMsg *string
		setID  *string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT request_id, owner_id, status, progress_pct, error, set_id, created_at, updated_at
		FROM generation_requests WHERE request_id = $1`, id,
	).Scan(&req.ID, &req.OwnerID, &req.Status, &req.ProgressPct, &errMsg, &setID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return generate.Request{}, generate.ErrRequestNotFound
		}
		return generate.Request{}, err
	}
	if errMsg != nil {
		req.Error = *errMsg
	}
	if setID != nil {
		req.SetID = *setID
	}
	return req, nil
}

func (r *RequestRepository) UpdateProgress(ctx context.Context, id, status string, progressPct int) error {
	// GREATEST keeps the reported progress monotonic even if updates land
	// out of order.
	tag, err := r.pool.Exec(ctx, `
		UPDATE generation_requests
		SET status = $2, progress_pct = GREATEST(progress_pct, $3), updated_at = now()
		WHERE request_id = $1`, id, status, progressPct)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return generate.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) MarkFailed(ctx context.Context, id, errMsg string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE generation_requests
		SET status = $2, error = $3, updated_at = now()
		WHERE request_id = $1`, id, generate.StatusFailed, errMsg)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return generate.ErrRequestNotFound
	}
	return nil
}

// MarkComplete sets the terminal status, full progress and the set id in
// a single statement so readers never observe a complete request without
// its set.
func (r *RequestRepository) MarkComplete(ctx context.Context, id, setID string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE generation_requests
		SET status = $2, progress_pct = 100, set_id = $3, updated_at = now()
		WHERE request_id = $1`, id, generate.StatusComplete, setID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return generate.ErrRequestNotFound
	}
	return nil
}
