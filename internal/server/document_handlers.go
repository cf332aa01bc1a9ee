package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/examgenius/exam-platform/internal/auth"
	"github.com/examgenius/exam-platform/internal/db/repository"
	httperrors "github.com/examgenius/exam-platform/pkg/http/errors"
)

// maxDocumentBytes caps the request body for uploads. The stored text is
// injected into prompts, so oversized documents are rejected outright.
const maxDocumentBytes = 2 << 20

// DocumentStore is the persistence surface the upload endpoints need.
type DocumentStore interface {
	SaveDocument(ctx context.Context, doc repository.Document) error
	ListByOwner(ctx context.Context, ownerID string) ([]repository.Document, error)
}

// DocumentHandlers serves uploaded reference documents.
type DocumentHandlers struct {
	docs   DocumentStore
	logger zerolog.Logger
}

func NewDocumentHandlers(docs DocumentStore, logger zerolog.Logger) *DocumentHandlers {
	return &DocumentHandlers{docs: docs, logger: logger}
}

// HandleDocuments dispatches /v1/documents by method.
func (h *DocumentHandlers) HandleDocuments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.upload(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
	}
}

func (h *DocumentHandlers) upload(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.UserIDFromContext(r.Context())
	if ownerID == "" {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentBytes)

	var payload struct {
		FileName string `json:"fileName"`
		Text     string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperrors.RespondError(w, http.StatusRequestEntityTooLarge, httperrors.ErrCodeDocumentTooLarge, "Document exceeds the upload limit")
			return
		}
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}
	if strings.TrimSpace(payload.Text) == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "Document text must not be empty", "text")
		return
	}

	doc := repository.Document{
		ID:         "uploaded_" + uuid.NewString(),
		OwnerID:    ownerID,
		FileName:   payload.FileName,
		Text:       payload.Text,
		UploadedAt: time.Now().UTC(),
	}
	if err := h.docs.SaveDocument(r.Context(), doc); err != nil {
		h.logger.Error().Err(err).Msg("document save failed")
		httperrors.RespondInternalError(w, "Could not store document")
		return
	}

	respondJSON(w, http.StatusCreated, doc)
}

func (h *DocumentHandlers) list(w http.ResponseWriter, r *http.Request) {
	ownerID := auth.UserIDFromContext(r.Context())
	if ownerID == "" {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "Authentication required")
		return
	}

	docs, err := h.docs.ListByOwner(r.Context(), ownerID)
	if err != nil {
		h.logger.Error().Err(err).Msg("document list failed")
		httperrors.RespondInternalError(w, "Could not list documents")
		return
	}
	if docs == nil {
		docs = []repository.Document{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"documents": docs})
}
