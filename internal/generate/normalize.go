package generate

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type completionEnvelope struct {
	Questions []Question `json:"questions"`
}

// NormalizeQuestions parses the completion content into typed questions.
// Missing ids are filled with fresh UUIDs before shape validation so error
// reports can always name the offending question. An empty question list
// is a failure: it means the model produced nothing usable.
func NormalizeQuestions(content string) ([]Question, error) {
	var envelope completionEnvelope
	if err := json.Unmarshal([]byte(content), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(envelope.Questions) == 0 {
		return nil, ErrEmptyQuestions
	}

	questions := envelope.Questions
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
	}

	if err := ValidateQuestions(questions); err != nil {
		return nil, err
	}
	return questions, nil
}
