// Package export renders a question set into a Word-compatible HTML
// document for download.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/examgenius/exam-platform/internal/generate"
)

// ContentType is the MIME type word processors accept for the .doc
// download.
const ContentType = "application/msword"

// sectionOrder fixes the export grouping regardless of the order the
// questions were generated or edited in.
var sectionOrder = []struct {
	qType string
	title string
}{
	{generate.TypeMCQ, "MULTIPLE CHOICE QUESTIONS"},
	{generate.TypeTrueFalse, "TRUE/FALSE QUESTIONS"},
	{generate.TypeFillInBlank, "FILL-IN-THE-BLANK QUESTIONS"},
	{generate.TypeShortAnswer, "SHORT ANSWER QUESTIONS"},
}

// FileName builds the download name for a set export.
func FileName(setID string) string {
	return fmt.Sprintf("exam-questions-%s.doc", setID)
}

// Render produces the full HTML document for a set. Questions are grouped
// by type in a fixed section order, numbered from 1 within each section,
// with the correct answer styled distinctly after each question. Empty
// sections are omitted.
func Render(set generate.QuestionSet) []byte {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Exam Questions</title>
  <style>
    body { font-family: 'Times New Roman', Times, serif; font-size: 12pt; line-height: 1.5; }
    h1 { font-size: 16pt; text-align: center; margin-bottom: 20px; }
    h2 { font-size: 14pt; margin-top: 30px; margin-bottom: 10px; }
    .question { margin-bottom: 20px; }
    .space-for-answer { height: 30px; border-bottom: 1px solid #ccc; margin: 10px 0; }
    .answer { font-weight: bold; color: #2E7D32; margin-top: 5px; }
    @media print {
      .page-break { page-break-before: always; }
    }
  </style>
</head>
<body>
`)
	fmt.Fprintf(&b, "  <h1>Generated Exam Questions - Set %s</h1>\n", html.EscapeString(setLabel(set.ID)))

	for _, section := range sectionOrder {
		questions := filterByType(set.Questions, section.qType)
		if len(questions) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  <h2>%s</h2>\n", section.title)
		for i, q := range questions {
			writeQuestion(&b, i+1, q)
		}
	}

	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}

// setLabel shortens the set id for the document heading: the five
// characters after the "set_" prefix.
func setLabel(setID string) string {
	const prefixLen = 4
	if len(setID) <= prefixLen {
		return setID
	}
	label := setID[prefixLen:]
	if len(label) > 5 {
		label = label[:5]
	}
	return label
}

func filterByType(questions []generate.Question, qType string) []generate.Question {
	var out []generate.Question
	for _, q := range questions {
		if q.Type == qType {
			out = append(out, q)
		}
	}
	return out
}

func writeQuestion(b *strings.Builder, number int, q generate.Question) {
	b.WriteString(`  <div class="question">` + "\n")
	fmt.Fprintf(b, "    <p><strong>%d.</strong> %s</p>\n", number, html.EscapeString(q.Text))

	switch q.Type {
	case generate.TypeMCQ:
		for i, option := range q.Options {
			letter := optionLetter(i)
			fmt.Fprintf(b, `    <p style="margin-left: 20px;">%s. %s</p>`+"\n", letter, html.EscapeString(option))
		}
		if idx, ok := q.Answer.Index(); ok && idx >= 0 && idx < len(q.Options) {
			fmt.Fprintf(b, `    <p class="answer">Correct Answer: %s. %s</p>`+"\n",
				optionLetter(idx), html.EscapeString(q.Options[idx]))
		}
	case generate.TypeTrueFalse:
		b.WriteString("    <p>True/False</p>\n")
		answer := "False"
		if v, ok := q.Answer.Bool(); ok && v {
			answer = "True"
		}
		fmt.Fprintf(b, `    <p class="answer">Correct Answer: %s</p>`+"\n", answer)
	case generate.TypeFillInBlank:
		text, _ := q.Answer.Text()
		fmt.Fprintf(b, `    <p class="answer">Correct Answer: %s</p>`+"\n", html.EscapeString(text))
	case generate.TypeShortAnswer:
		b.WriteString(`    <div class="space-for-answer"></div>` + "\n")
		text, _ := q.Answer.Text()
		fmt.Fprintf(b, `    <p class="answer">Correct Answer: %s</p>`+"\n", html.EscapeString(text))
	}

	b.WriteString("  </div>\n")
}

func optionLetter(index int) string {
	return string(rune('A' + index))
}
