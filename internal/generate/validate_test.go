package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examgenius/exam-platform/internal/curriculum"
)

func validForm() FormData {
	return FormData{
		DocumentID: "tm4",
		Selection: curriculum.Selection{
			ClassLevel:         curriculum.LevelSHS,
			ClassGrade:         "shs1",
			SubjectID:          "comp_shs",
			StrandID:           "comp1",
			SubStrandID:        "comp1_1",
			LearningIndicators: []string{"li_comp1_1_1"},
		},
		QuestionTypes: []QuestionTypeRequest{{Type: TypeMCQ, Count: 2}},
	}
}

func TestValidateFormAccepts(t *testing.T) {
	assert.NoError(t, ValidateForm(curriculum.Default(), validForm()))
}

func TestValidateFormFirstUnmetPreconditionWins(t *testing.T) {
	catalog := curriculum.Default()

	// document missing and curriculum empty: document is reported first
	form := FormData{QuestionTypes: []QuestionTypeRequest{{Type: TypeMCQ, Count: 1}}}
	err := ValidateForm(catalog, form)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "documentId", verr.Field)

	// document present, curriculum empty: class level next
	form.DocumentID = "tm4"
	err = ValidateForm(catalog, form)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "classLevel", verr.Field)
}

func TestValidateFormFieldOrder(t *testing.T) {
	catalog := curriculum.Default()

	tests := []struct {
		name   string
		mutate func(*FormData)
		field  string
	}{
		{"empty grade", func(f *FormData) { f.Selection.ClassGrade = "" }, "classGrade"},
		{"empty subject", func(f *FormData) { f.Selection.SubjectID = "" }, "subjectId"},
		{"empty strand", func(f *FormData) { f.Selection.StrandID = "" }, "strandId"},
		{"empty sub-strand", func(f *FormData) { f.Selection.SubStrandID = "" }, "subStrandId"},
		{"no indicators", func(f *FormData) { f.Selection.LearningIndicators = nil }, "learningIndicators"},
		{"off-catalog strand", func(f *FormData) { f.Selection.StrandID = "phy1" }, "strandId"},
		{"no question types", func(f *FormData) { f.QuestionTypes = nil }, "questionTypes"},
		{"unknown type", func(f *FormData) { f.QuestionTypes[0].Type = "Essay" }, "questionTypes[0].type"},
		{"zero count", func(f *FormData) { f.QuestionTypes[0].Count = 0 }, "questionTypes[0].count"},
		{"excessive count", func(f *FormData) { f.QuestionTypes[0].Count = 101 }, "questionTypes[0].count"},
		{"oversize notes", func(f *FormData) {
			for len(f.AdditionalNotes) <= maxNotesLength {
				f.AdditionalNotes += "more context "
			}
		}, "additionalNotes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			err := ValidateForm(catalog, form)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func mcq(id string, answer int) Question {
	return Question{
		ID:      id,
		Type:    TypeMCQ,
		Text:    "Which component executes instructions?",
		Options: []string{"RAM", "CPU", "ROM", "Cache"},
		Answer:  IndexAnswer(answer),
	}
}

func TestValidateQuestionsShapes(t *testing.T) {
	good := []Question{
		mcq("q1", 1),
		{ID: "q2", Type: TypeTrueFalse, Text: "A byte has 8 bits.", Answer: BoolAnswer(true)},
		{ID: "q3", Type: TypeFillInBlank, Text: "The _____ fetches instructions.", Answer: TextAnswer("control unit")},
		{ID: "q4", Type: TypeShortAnswer, Text: "Name the CPU cycle stages.", Answer: TextAnswer("fetch, decode, execute")},
	}
	assert.NoError(t, ValidateQuestions(good))
}

func TestValidateQuestionsRejects(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		reason   string
	}{
		{"mcq short options", Question{ID: "q", Type: TypeMCQ, Text: "t", Options: []string{"a", "b"}, Answer: IndexAnswer(0)}, "expected 4 options"},
		{"mcq string answer", func() Question { q := mcq("q", 0); q.Answer = TextAnswer("CPU"); return q }(), "option index"},
		{"mcq index out of range", mcq("q", 4), "out of range"},
		{"true/false string answer", Question{ID: "q", Type: TypeTrueFalse, Text: "t", Answer: TextAnswer("true")}, "boolean"},
		{"fill blank bool answer", Question{ID: "q", Type: TypeFillInBlank, Text: "t", Answer: BoolAnswer(true)}, "non-empty string"},
		{"short answer empty", Question{ID: "q", Type: TypeShortAnswer, Text: "t", Answer: TextAnswer("")}, "non-empty string"},
		{"unknown type", Question{ID: "q", Type: "Essay", Text: "t", Answer: TextAnswer("x")}, "unknown question type"},
		{"missing text", Question{ID: "q", Type: TypeShortAnswer, Answer: TextAnswer("x")}, "missing question text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuestions([]Question{tt.question})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}

	t.Run("duplicate id", func(t *testing.T) {
		err := ValidateQuestions([]Question{mcq("q1", 0), mcq("q1", 1)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate id")
	})
}
