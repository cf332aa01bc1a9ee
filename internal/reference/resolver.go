// Package reference resolves a generation request's document id to the
// reference text the prompt is grounded on: either an embedded teacher
// manual excerpt or the extracted text of an uploaded document.
package reference

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/examgenius/exam-platform/internal/curriculum"
)

// ErrNotFound is returned when no reference text exists for a document id.
var ErrNotFound = errors.New("reference: document not found")

const uploadedIDPrefix = "uploaded_"

// DocumentStore reads back uploaded documents by id, scoped to the
// uploading owner.
type DocumentStore interface {
	DocumentText(ctx context.Context, ownerID, documentID string) (string, error)
}

type Resolver struct {
	catalog *curriculum.Catalog
	docs    DocumentStore
}

func NewResolver(catalog *curriculum.Catalog, docs DocumentStore) *Resolver {
	return &Resolver{catalog: catalog, docs: docs}
}

// Resolve returns the reference text for a document id. Manual ids ("tm"
// prefix) resolve against the embedded library; uploaded ids resolve
// through the document store under the requesting owner. Anything else is
// ErrNotFound.
func (r *Resolver) Resolve(ctx context.Context, ownerID, documentID string, sel curriculum.Selection) (string, error) {
	switch {
	case strings.HasPrefix(documentID, uploadedIDPrefix):
		text, err := r.docs.DocumentText(ctx, ownerID, documentID)
		if err != nil {
			return "", fmt.Errorf("reference: uploaded document %s: %w", documentID, err)
		}
		if strings.TrimSpace(text) == "" {
			return "", ErrNotFound
		}
		return text, nil
	case strings.HasPrefix(documentID, "tm"):
		if _, ok := r.catalog.ManualByID(documentID); !ok {
			return "", ErrNotFound
		}
		return r.manualText(documentID, sel), nil
	default:
		return "", ErrNotFound
	}
}

func (r *Resolver) manualText(manualID string, sel curriculum.Selection) string {
	switch manualID {
	case "tm4":
		return computingBook1Text
	case "tm5":
		return computingBook2Text
	case "tm7":
		return physicsManualText(1, sel, r.catalog)
	case "tm8":
		return physicsManualText(2, sel, r.catalog)
	default:
		return genericManualText(sel)
	}
}
