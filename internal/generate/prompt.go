package generate

import (
	"fmt"
	"strings"

	"github.com/examgenius/exam-platform/internal/curriculum"
)

// SystemPrompt is the fixed system message sent with every completion.
const SystemPrompt = "You are an AI assistant that specializes in creating educational content for Ghanaian students."

// BuildPrompt renders the user message for one generation request. It is a
// pure formatting step: identical inputs produce byte-identical output, so
// prompts can be compared and cached.
func BuildPrompt(referenceText string, sel curriculum.Selection, detail curriculum.SelectionDetail, types []QuestionTypeRequest, notes string) string {
	levelName := "Senior High School"
	gradeRange := "SHS1/SHS2/SHS3"
	if sel.ClassLevel == curriculum.LevelJHS {
		levelName = "Junior High School"
		gradeRange = "BS7/BS8/BS9"
	}

	var typeLines []string
	for _, qt := range types {
		typeLines = append(typeLines, fmt.Sprintf("- %d %s questions", qt.Count, qt.Type))
	}

	if notes == "" {
		notes = "None"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert educational content creator specializing in creating exam questions for Ghanaian students following the Ghana Standard-Based Curriculum.

IMPORTANT: You MUST use the provided teacher manual content to generate questions. The questions should be based ONLY on the information contained in the teacher manual.

Create high-quality, age-appropriate exam questions based on the following parameters:
- Educational Level: %s (%s)
- Class Grade: %s
- Subject: %s
- Strand: %s
- Sub-Strand: %s
- Learning Indicators: %s

Question types to generate:
%s

Additional notes: %s

`,
		sel.ClassLevel, levelName,
		gradeRange,
		detail.SubjectName,
		detail.StrandName,
		detail.SubStrandName,
		strings.Join(detail.IndicatorNames, "; "),
		strings.Join(typeLines, "\n"),
		notes,
	)

	b.WriteString(`IMPORTANT INSTRUCTIONS:
1. All questions MUST be based on the teacher manual content provided below.
2. All questions MUST strictly follow the Ghana Standard-Based Curriculum for the specified subject, strand, and sub-strand.
3. Questions should be culturally relevant to Ghanaian students and use local contexts when appropriate.
4. Use appropriate difficulty level for the specified educational level and grade.
5. For MCQs:
   - Always provide exactly 4 options (A, B, C, D)
   - ONE option must be correct
   - The other 3 options should be plausible but incorrect
   - The "answer" field must contain the index of the correct option (0 for A, 1 for B, 2 for C, 3 for D)
6. For True/False questions:
   - Make sure the statement is clearly either true or false
   - The "answer" field must be a boolean (true or false)
7. For Fill-in-the-Blank questions:
   - Use a clear underline or blank space where the answer should go
   - The "answer" field must contain the exact word or phrase that should fill the blank
8. For Short Answer questions:
   - Ensure they are concise and have specific expected answers
   - The "answer" field must contain a clear, concise model answer
9. DO NOT generate questions about topics that are not covered in the teacher manual content.
10. EVERY question MUST have a corresponding answer that is correct, clear, and unambiguous.

TEACHER MANUAL CONTENT:
`)
	b.WriteString(referenceText)
	b.WriteString(`

Return the questions as a JSON object with a "questions" array of objects with the following structure:
{
  "id": "unique_id",
  "type": "question_type",
  "text": "question_text",
  "options": ["option1", "option2", "option3", "option4"],
  "answer": "correct_answer"
}
The "options" field is present only for MCQ. The "answer" field is the option index (0-3) for MCQ, a boolean for True/False, and a string for the other types.`)
	return b.String()
}
