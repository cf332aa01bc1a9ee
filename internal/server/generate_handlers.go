package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/examgenius/exam-platform/internal/auth"
	"github.com/examgenius/exam-platform/internal/export"
	"github.com/examgenius/exam-platform/internal/generate"
	"github.com/examgenius/exam-platform/internal/reference"
	httperrors "github.com/examgenius/exam-platform/pkg/http/errors"
)

// GenerateHandlers provides REST endpoints for the generation pipeline
// and the question sets it produces.
type GenerateHandlers struct {
	svc    *generate.Service
	logger zerolog.Logger
}

func NewGenerateHandlers(svc *generate.Service, logger zerolog.Logger) *GenerateHandlers {
	return &GenerateHandlers{svc: svc, logger: logger}
}

// SubmitRequest handles POST /v1/requests
func (h *GenerateHandlers) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
		return
	}

	var form generate.FormData
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	requestID, err := h.svc.Submit(r.Context(), auth.UserIDFromContext(r.Context()), form)
	if err != nil {
		h.respondServiceError(w, err, httperrors.ErrCodeSubmitFailed)
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"request_id": requestID,
		"status":     generate.StatusPending,
	})
}

// RequestStatus handles GET /v1/requests/{id}
func (h *GenerateHandlers) RequestStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
		return
	}

	req, err := h.svc.Status(r.Context(), auth.UserIDFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		h.respondServiceError(w, err, httperrors.ErrCodeRequestNotFound)
		return
	}

	respondJSON(w, http.StatusOK, req)
}

// ListSets handles GET /v1/sets
func (h *GenerateHandlers) ListSets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
		return
	}

	sets, err := h.svc.ListSets(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		h.respondServiceError(w, err, httperrors.ErrCodeSetNotFound)
		return
	}
	if sets == nil {
		sets = []generate.QuestionSet{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"sets": sets})
}

// GetSet handles GET /v1/sets/{id}
func (h *GenerateHandlers) GetSet(w http.ResponseWriter, r *http.Request) {
	set, err := h.svc.QuestionSet(r.Context(), auth.UserIDFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		h.respondServiceError(w, err, httperrors.ErrCodeSetNotFound)
		return
	}

	respondJSON(w, http.StatusOK, set)
}

// SaveSet handles PUT /v1/sets/{id}
func (h *GenerateHandlers) SaveSet(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Questions []generate.Question `json:"questions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	setID := r.PathValue("id")
	if err := h.svc.SaveQuestionSet(r.Context(), auth.UserIDFromContext(r.Context()), setID, payload.Questions); err != nil {
		h.respondServiceError(w, err, httperrors.ErrCodeSetNotFound)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"id": setID, "saved": true})
}

// HandleSet dispatches /v1/sets/{id} by method.
func (h *GenerateHandlers) HandleSet(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetSet(w, r)
	case http.MethodPut:
		h.SaveSet(w, r)
	default:
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
	}
}

// ExportSet handles GET /v1/sets/{id}/export
func (h *GenerateHandlers) ExportSet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
		return
	}

	set, err := h.svc.QuestionSet(r.Context(), auth.UserIDFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		h.respondServiceError(w, err, httperrors.ErrCodeExportFailed)
		return
	}

	doc := export.Render(set)
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(set.ID)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		h.logger.Warn().Err(err).Str("set_id", set.ID).Msg("export write failed")
	}
}

// respondServiceError maps domain errors onto HTTP statuses. fallback is
// the code used for errors with no specific mapping.
func (h *GenerateHandlers) respondServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		validationErr *generate.ValidationError
		shapeErr      *generate.ShapeError
	)
	switch {
	case errors.Is(err, generate.ErrAuthRequired):
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "Authentication required")
	case errors.Is(err, generate.ErrForbidden):
		httperrors.RespondForbidden(w, httperrors.ErrCodeForbidden, "You do not own this resource")
	case errors.Is(err, generate.ErrRequestNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeRequestNotFound, "Request not found")
	case errors.Is(err, generate.ErrSetNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeSetNotFound, "Question set not found")
	case errors.Is(err, reference.ErrNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeReferenceNotFound, "Reference document not found")
	case errors.As(err, &validationErr):
		httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, validationErr.Message, validationErr.Field)
	case errors.As(err, &shapeErr):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeValidationFailed, shapeErr.Error())
	default:
		h.logger.Error().Err(err).Msg("generation request failed")
		httperrors.RespondError(w, http.StatusInternalServerError, fallback, err.Error())
	}
}
