package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/examgenius/exam-platform/internal/reference"
)

// Document is an uploaded reference document with its extracted text.
type Document struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"-"`
	FileName   string    `json:"fileName"`
	Text       string    `json:"-"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// DocumentRepository persists uploaded reference documents.
type DocumentRepository struct {
	pool *pgxpool.Pool
}

var _ reference.DocumentStore = (*DocumentRepository)(nil)

func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

func (r *DocumentRepository) SaveDocument(ctx context.Context, doc Document) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO documents (document_id, owner_id, file_name, content_text, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)`,
		doc.ID, doc.OwnerID, doc.FileName, doc.Text, doc.UploadedAt,
	)
	return err
}

// DocumentText returns the extracted text of an uploaded document. The
// lookup is scoped to the owner so one user can never resolve another's
// uploads.
func (r *DocumentRepository) DocumentText(ctx context.Context, ownerID, documentID string) (string, error) {
	var text string
	err := r.pool.QueryRow(ctx, `
		SELECT content_text FROM documents
		WHERE document_id = $1 AND owner_id = $2`, documentID, ownerID,
	).Scan(&text)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", reference.ErrNotFound
		}
		return "", err
	}
	return text, nil
}

func (r *DocumentRepository) ListByOwner(ctx context.Context, ownerID string) ([]Document, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT document_id, owner_id, file_name, uploaded_at
		FROM documents WHERE owner_id = $1
		ORDER BY uploaded_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.OwnerID, &doc.FileName, &doc.UploadedAt); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
