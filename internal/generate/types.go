package generate

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/examgenius/exam-platform/internal/curriculum"
)

// Question type labels as they appear in requests, stored sets and exports.
const (
	TypeMCQ         = "MCQ"
	TypeTrueFalse   = "True/False"
	TypeFillInBlank = "Fill-in-the-Blank"
	TypeShortAnswer = "Short Answer"
)

// MCQ questions always carry exactly this many options.
const MCQOptionCount = 4

// Request lifecycle states.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusComplete   = "complete"
	StatusFailed     = "failed"
)

// Progress checkpoints reported while a request is processed. Progress
// only ever moves forward; 100 is reached exactly when the set id is set.
const (
	progressStarted   = 10
	progressReference = 20
	progressPrompt    = 40
	progressGenerated = 90
	progressComplete  = 100
)

// QuestionTypeRequest asks for count questions of one type.
type QuestionTypeRequest struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// FormData is the full payload of a generation request.
type FormData struct {
	DocumentID      string                `json:"documentId"`
	Selection       curriculum.Selection  `json:"selection"`
	QuestionTypes   []QuestionTypeRequest `json:"questionTypes"`
	AdditionalNotes string                `json:"additionalNotes,omitempty"`
}

// Answer holds the per-type answer value: an option index for MCQ, a
// boolean for True/False, and a string for the free-text types. The zero
// Answer marshals as JSON null.
type Answer struct {
	value any
}

func IndexAnswer(i int) Answer   { return Answer{value: i} }
func BoolAnswer(b bool) Answer   { return Answer{value: b} }
func TextAnswer(s string) Answer { return Answer{value: s} }

func (a Answer) Index() (int, bool) {
	i, ok := a.value.(int)
	return i, ok
}

func (a Answer) Bool() (bool, bool) {
	b, ok := a.value.(bool)
	return b, ok
}

func (a Answer) Text() (string, bool) {
	s, ok := a.value.(string)
	return s, ok
}

func (a Answer) IsZero() bool { return a.value == nil }

func (a Answer) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		a.value = nil
	case bool:
		a.value = v
	case string:
		a.value = v
	case float64:
		// option indexes arrive as JSON numbers
		i := int(v)
		if float64(i) != v {
			return fmt.Errorf("answer: non-integer index %v", v)
		}
		a.value = i
	default:
		return fmt.Errorf("answer: unsupported value %T", raw)
	}
	return nil
}

// Question is one generated or edited exam question.
type Question struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
	Answer  Answer   `json:"answer"`
}

// Request tracks one generation request through its lifecycle.
type Request struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"-"`
	Status      string    `json:"status"`
	ProgressPct int       `json:"progressPct"`
	Error       string    `json:"error,omitempty"`
	SetID       string    `json:"setId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// QuestionSet is the persisted outcome of a complete request.
type QuestionSet struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"-"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
