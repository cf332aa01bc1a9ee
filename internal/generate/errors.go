package generate

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired means the caller is not authenticated. It is checked
	// before any form validation runs.
	ErrAuthRequired = errors.New("generate: authentication required")
	// ErrRequestNotFound means no generation request exists with that id.
	ErrRequestNotFound = errors.New("generate: request not found")
	// ErrSetNotFound means no question set exists with that id.
	ErrSetNotFound = errors.New("generate: question set not found")
	// ErrForbidden means the caller does not own the resource.
	ErrForbidden = errors.New("generate: not the owner of this resource")
	// ErrEmptyQuestions means the model replied with zero usable questions.
	ErrEmptyQuestions = errors.New("generate: model returned empty question set")
	// ErrMalformedResponse means the model reply was not the expected JSON.
	ErrMalformedResponse = errors.New("generate: malformed model response")
	// ErrGenerationTimeout means the completion call exceeded its deadline.
	ErrGenerationTimeout = errors.New("generate: generation timed out")
)

// ValidationError reports the first invalid field of a submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("generate: invalid %s: %s", e.Field, e.Message)
}

// ShapeError reports a question whose answer does not match its type.
type ShapeError struct {
	QuestionID string
	Type       string
	Reason     string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("generate: question %s (%s): %s", e.QuestionID, e.Type, e.Reason)
}
