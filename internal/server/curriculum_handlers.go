package server

import (
	"net/http"

	"github.com/examgenius/exam-platform/internal/curriculum"
	httperrors "github.com/examgenius/exam-platform/pkg/http/errors"
)

// CurriculumHandlers serves the selection catalog and the manual library.
type CurriculumHandlers struct {
	catalog *curriculum.Catalog
}

func NewCurriculumHandlers(catalog *curriculum.Catalog) *CurriculumHandlers {
	return &CurriculumHandlers{catalog: catalog}
}

// Options handles GET /v1/curriculum/options. Each query parameter
// narrows the cascade one step: no parameters returns the levels, a
// substrand returns its learning indicators.
func (h *CurriculumHandlers) Options(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
		return
	}

	q := r.URL.Query()
	switch {
	case q.Get("substrand") != "":
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"indicators": nonNil(h.catalog.Indicators(q.Get("substrand"))),
		})
	case q.Get("strand") != "":
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"subStrands": nonNil(h.catalog.SubStrands(q.Get("strand"))),
		})
	case q.Get("subject") != "":
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"strands": nonNil(h.catalog.Strands(q.Get("subject"))),
		})
	case q.Get("level") != "":
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"grades":   nonNil(h.catalog.Grades(q.Get("level"))),
			"subjects": nonNil(h.catalog.Subjects(q.Get("level"))),
		})
	default:
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"levels": h.catalog.Levels(),
		})
	}
}

// Manuals handles GET /v1/manuals, optionally filtered by grade and
// subject query parameters.
func (h *CurriculumHandlers) Manuals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondError(w, http.StatusMethodNotAllowed, httperrors.ErrCodeInvalidRequest, "Method not allowed")
		return
	}

	grade := r.URL.Query().Get("grade")
	subject := r.URL.Query().Get("subject")

	manuals := []curriculum.Manual{}
	for _, m := range h.catalog.Manuals() {
		if grade != "" && m.ClassGrade != grade {
			continue
		}
		if subject != "" && m.SubjectID != subject {
			continue
		}
		manuals = append(manuals, m)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"manuals": manuals})
}

func nonNil(opts []curriculum.Option) []curriculum.Option {
	if opts == nil {
		return []curriculum.Option{}
	}
	return opts
}
