package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuestionsPreservesAnswers(t *testing.T) {
	content := `{"questions":[
		{"id":"q1","type":"MCQ","text":"Which unit performs arithmetic?","options":["CU","ALU","RAM","ROM"],"answer":1},
		{"id":"q2","type":"MCQ","text":"Smallest unit of data?","options":["Bit","Byte","Word","Nibble"],"answer":0},
		{"type":"True/False","text":"Cache sits between CPU and main memory.","answer":true},
		{"type":"Short Answer","text":"What does CPU stand for?","answer":"Central Processing Unit"}
	]}`

	questions, err := NormalizeQuestions(content)
	require.NoError(t, err)
	require.Len(t, questions, 4)

	idx, ok := questions[0].Answer.Index()
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = questions[1].Answer.Index()
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	b, ok := questions[2].Answer.Bool()
	require.True(t, ok)
	assert.True(t, b)

	text, ok := questions[3].Answer.Text()
	require.True(t, ok)
	assert.Equal(t, "Central Processing Unit", text)

	// missing ids are filled in
	assert.NotEmpty(t, questions[2].ID)
	assert.NotEmpty(t, questions[3].ID)
	assert.NotEqual(t, questions[2].ID, questions[3].ID)
	// present ids survive untouched
	assert.Equal(t, "q1", questions[0].ID)
}

func TestNormalizeQuestionsMalformedJSON(t *testing.T) {
	_, err := NormalizeQuestions("Sure! Here are your questions: 1. What is...")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestNormalizeQuestionsEmpty(t *testing.T) {
	_, err := NormalizeQuestions(`{"questions":[]}`)
	assert.ErrorIs(t, err, ErrEmptyQuestions)

	// a valid object without the questions key is just as useless
	_, err = NormalizeQuestions(`{"items":[1,2,3]}`)
	assert.ErrorIs(t, err, ErrEmptyQuestions)
}

func TestNormalizeQuestionsRejectsBadShape(t *testing.T) {
	content := `{"questions":[
		{"id":"q1","type":"MCQ","text":"Pick one","options":["a","b","c","d"],"answer":"b"}
	]}`
	_, err := NormalizeQuestions(content)
	var shape *ShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "q1", shape.QuestionID)
}

func TestNormalizeQuestionsRejectsFractionalIndex(t *testing.T) {
	content := `{"questions":[
		{"id":"q1","type":"MCQ","text":"Pick one","options":["a","b","c","d"],"answer":1.5}
	]}`
	_, err := NormalizeQuestions(content)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
