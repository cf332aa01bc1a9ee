package generate

import (
	"errors"
	"fmt"

	"github.com/examgenius/exam-platform/internal/curriculum"
)

const (
	maxCountPerType = 100
	maxNotesLength  = 500
)

var questionTypeLabels = map[string]struct{}{
	TypeMCQ:         {},
	TypeTrueFalse:   {},
	TypeFillInBlank: {},
	TypeShortAnswer: {},
}

// ValidateForm checks a submission's preconditions in a fixed order and
// returns a ValidationError naming the first unmet one. The order is part
// of the contract: a form missing both its document and its curriculum
// fields always reports the document first.
//
// Submissions are rejected, never repaired: an inconsistent curriculum
// chain is reported at its first broken link rather than run through
// curriculum.Normalize, which would blank the downstream fields and shift
// the reported field. Normalize is for interactive selection editing; any
// form that passes here is already one of its fixed points.
func ValidateForm(catalog *curriculum.Catalog, form FormData) error {
	if form.DocumentID == "" {
		return &ValidationError{Field: "documentId", Message: "a teacher manual is required to generate questions"}
	}
	sel := form.Selection
	for _, check := range []struct {
		field string
		value string
	}{
		{"classLevel", sel.ClassLevel},
		{"classGrade", sel.ClassGrade},
		{"subjectId", sel.SubjectID},
		{"strandId", sel.StrandID},
		{"subStrandId", sel.SubStrandID},
	} {
		if check.value == "" {
			return &ValidationError{Field: check.field, Message: "must not be empty"}
		}
	}
	if len(sel.LearningIndicators) == 0 {
		return &ValidationError{Field: "learningIndicators", Message: "select at least one learning indicator"}
	}
	if err := catalog.Validate(sel); err != nil {
		var inv *curriculum.InvalidSelectionError
		if errors.As(err, &inv) {
			return &ValidationError{Field: inv.Field, Message: fmt.Sprintf("%q is not in the curriculum catalog", inv.Value)}
		}
		return err
	}
	if len(form.QuestionTypes) == 0 {
		return &ValidationError{Field: "questionTypes", Message: "request at least one question type"}
	}
	for i, qt := range form.QuestionTypes {
		if _, ok := questionTypeLabels[qt.Type]; !ok {
			return &ValidationError{Field: fmt.Sprintf("questionTypes[%d].type", i), Message: fmt.Sprintf("unknown question type %q", qt.Type)}
		}
		if qt.Count < 1 {
			return &ValidationError{Field: fmt.Sprintf("questionTypes[%d].count", i), Message: "count must be at least 1"}
		}
		if qt.Count > maxCountPerType {
			return &ValidationError{Field: fmt.Sprintf("questionTypes[%d].count", i), Message: fmt.Sprintf("count must be at most %d", maxCountPerType)}
		}
	}
	if len(form.AdditionalNotes) > maxNotesLength {
		return &ValidationError{Field: "additionalNotes", Message: fmt.Sprintf("must be at most %d characters", maxNotesLength)}
	}
	return nil
}

// ValidateQuestions enforces the per-type answer-shape contract on a list
// of questions, generated or user-edited. The first violation is returned
// as a ShapeError.
func ValidateQuestions(questions []Question) error {
	seen := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		if q.ID == "" {
			return &ShapeError{QuestionID: q.ID, Type: q.Type, Reason: "missing id"}
		}
		if _, dup := seen[q.ID]; dup {
			return &ShapeError{QuestionID: q.ID, Type: q.Type, Reason: "duplicate id"}
		}
		seen[q.ID] = struct{}{}
		if q.Text == "" {
			return &ShapeError{QuestionID: q.ID, Type: q.Type, Reason: "missing question text"}
		}
		if err := validateShape(q); err != nil {
			return err
		}
	}
	return nil
}

func validateShape(q Question) error {
	switch q.Type {
	case TypeMCQ:
		if len(q.Options) != MCQOptionCount {
			return &ShapeError{QuestionID: q.ID, Type: q.Type, Reason: fmt.Sprintf("expected %d options, got %d", MCQOptionCount, len(q.Options))}
		}
		idx, ok := q.Answer.Index()
		if !ok {
			return &ShapeError{QuestionID: q.ID, Type: q.Type, Reason: "answer must be an option index"}
		}
		if idx < 0 || idx >= len(q.Options) {
			return &ShapeError{QuestionID: q.ID, Type: q.Type, Reason: fmt.Sprintf("answer index %d out of range", idx)}
		}
	case TypeTrueFalse:
		if len(q.Options) != 0 {
			return &ShapeError{QuestionID: q.ID, Type: q.Type, Reason: "options not allowed"}
		}
		if _, ok := q.Answer.Bool(); !ok {
			return &ShapeError{QuestionID: q.ID, Type: q.Type, Reason: "answer must be a boolean"}
		}
	case TypeFillInBlank, TypeShortAnswer:
		if len(q.Options) != 0 {
			return &ShapeError{QuestionID: q.ID, Type: q.Type, Reason: "options not allowed"}
		}
		text, ok := q.Answer.Text()
		if !ok || text == "" {
			return &ShapeError{QuestionID: q.ID, Type: q.Type, Reason: "answer must be a non-empty string"}
		}
	default:
		return &ShapeError{QuestionID: q.ID, Type: q.Type, Reason: "unknown question type"}
	}
	return nil
}
