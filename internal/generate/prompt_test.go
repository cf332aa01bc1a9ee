package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/examgenius/exam-platform/internal/curriculum"
)

func TestBuildPromptDeterministic(t *testing.T) {
	catalog := curriculum.Default()
	form := validForm()
	detail := catalog.Describe(form.Selection)

	first := BuildPrompt("REFERENCE", form.Selection, detail, form.QuestionTypes, "focus on memory")
	second := BuildPrompt("REFERENCE", form.Selection, detail, form.QuestionTypes, "focus on memory")
	assert.Equal(t, first, second)
}

func TestBuildPromptContent(t *testing.T) {
	catalog := curriculum.Default()
	form := validForm()
	form.QuestionTypes = []QuestionTypeRequest{
		{Type: TypeMCQ, Count: 5},
		{Type: TypeTrueFalse, Count: 3},
	}
	detail := catalog.Describe(form.Selection)

	prompt := BuildPrompt("THE MANUAL TEXT", form.Selection, detail, form.QuestionTypes, "")

	assert.Contains(t, prompt, "Educational Level: SHS (Senior High School)")
	assert.Contains(t, prompt, "Class Grade: SHS1/SHS2/SHS3")
	assert.Contains(t, prompt, "Subject: Computing")
	assert.Contains(t, prompt, "Strand: Computer Architecture and Organisation")
	assert.Contains(t, prompt, "- 5 MCQ questions")
	assert.Contains(t, prompt, "- 3 True/False questions")
	assert.Contains(t, prompt, "Additional notes: None")
	assert.Contains(t, prompt, "THE MANUAL TEXT")
	assert.Contains(t, prompt, `"questions" array`)
	assert.Contains(t, prompt, "index of the correct option (0 for A, 1 for B, 2 for C, 3 for D)")
}

func TestBuildPromptJHSLevel(t *testing.T) {
	catalog := curriculum.Default()
	sel := curriculum.Selection{
		ClassLevel:         curriculum.LevelJHS,
		ClassGrade:         "bs7",
		SubjectID:          "sci_jhs",
		StrandID:           "b7",
		SubStrandID:        "b7_1",
		LearningIndicators: []string{"li_b7_1_1"},
	}
	prompt := BuildPrompt("ref", sel, catalog.Describe(sel), []QuestionTypeRequest{{Type: TypeMCQ, Count: 1}}, "")
	assert.Contains(t, prompt, "Educational Level: JHS (Junior High School)")
	assert.Contains(t, prompt, "Class Grade: BS7/BS8/BS9")
}
