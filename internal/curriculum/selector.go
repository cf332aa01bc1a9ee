package curriculum

import (
	"fmt"
)

// Selection is one fully specified curriculum position. A Selection is
// only meaningful after Validate: each field must be a child of the one
// before it in the catalog hierarchy.
type Selection struct {
	ClassLevel         string   `json:"classLevel"`
	ClassGrade         string   `json:"classGrade"`
	SubjectID          string   `json:"subjectId"`
	StrandID           string   `json:"strandId"`
	SubStrandID        string   `json:"subStrandId"`
	LearningIndicators []string `json:"learningIndicators"`
}

// InvalidSelectionError reports the first field of a Selection that does
// not resolve against the catalog, outermost field first.
type InvalidSelectionError struct {
	Field string
	Value string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("curriculum: invalid %s %q", e.Field, e.Value)
}

func (c *Catalog) Levels() []Option { return c.levels }

// Grades returns the grade options for a class level, or nil if the
// level is unknown.
func (c *Catalog) Grades(level string) []Option { return c.grades[level] }

func (c *Catalog) Subjects(level string) []Option { return c.subjects[level] }

func (c *Catalog) Strands(subjectID string) []Option { return c.strands[subjectID] }

func (c *Catalog) SubStrands(strandID string) []Option { return c.subStrands[strandID] }

func (c *Catalog) Indicators(subStrandID string) []Option { return c.indicators[subStrandID] }

// IndicatorName resolves an indicator id under a sub-strand to its display
// name. The bool reports whether the indicator exists there.
func (c *Catalog) IndicatorName(subStrandID, indicatorID string) (string, bool) {
	for _, opt := range c.indicators[subStrandID] {
		if opt.ID == indicatorID {
			return opt.Name, true
		}
	}
	return "", false
}

// SubjectName resolves a subject id across all levels.
func (c *Catalog) SubjectName(subjectID string) (string, bool) {
	for _, opts := range c.subjects {
		for _, opt := range opts {
			if opt.ID == subjectID {
				return opt.Name, true
			}
		}
	}
	return "", false
}

// StrandName resolves a strand id within a subject.
func (c *Catalog) StrandName(subjectID, strandID string) (string, bool) {
	for _, opt := range c.strands[subjectID] {
		if opt.ID == strandID {
			return opt.Name, true
		}
	}
	return "", false
}

// SubStrandName resolves a sub-strand id within a strand.
func (c *Catalog) SubStrandName(strandID, subStrandID string) (string, bool) {
	for _, opt := range c.subStrands[strandID] {
		if opt.ID == subStrandID {
			return opt.Name, true
		}
	}
	return "", false
}

// Validate walks the Selection from class level down and returns an
// InvalidSelectionError for the first field that is not a catalog child of
// its parent. Indicators are checked last, in submission order.
func (c *Catalog) Validate(sel Selection) error {
	if !contains(c.levels, sel.ClassLevel) {
		return &InvalidSelectionError{Field: "classLevel", Value: sel.ClassLevel}
	}
	if !contains(c.grades[sel.ClassLevel], sel.ClassGrade) {
		return &InvalidSelectionError{Field: "classGrade", Value: sel.ClassGrade}
	}
	if !contains(c.subjects[sel.ClassLevel], sel.SubjectID) {
		return &InvalidSelectionError{Field: "subjectId", Value: sel.SubjectID}
	}
	if !contains(c.strands[sel.SubjectID], sel.StrandID) {
		return &InvalidSelectionError{Field: "strandId", Value: sel.StrandID}
	}
	if !contains(c.subStrands[sel.StrandID], sel.SubStrandID) {
		return &InvalidSelectionError{Field: "subStrandId", Value: sel.SubStrandID}
	}
	for _, ind := range sel.LearningIndicators {
		if _, ok := c.IndicatorName(sel.SubStrandID, ind); !ok {
			return &InvalidSelectionError{Field: "learningIndicators", Value: ind}
		}
	}
	return nil
}

// Normalize clears every field downstream of the first empty or off-catalog
// link, so editing an upstream field never leaves a stale child behind.
// Unknown indicators are dropped; a Selection that passes Validate comes
// back unchanged.
func (c *Catalog) Normalize(sel Selection) Selection {
	if !contains(c.levels, sel.ClassLevel) {
		sel.ClassGrade, sel.SubjectID, sel.StrandID, sel.SubStrandID = "", "", "", ""
		sel.LearningIndicators = nil
		return sel
	}
	if !contains(c.grades[sel.ClassLevel], sel.ClassGrade) {
		sel.SubjectID, sel.StrandID, sel.SubStrandID = "", "", ""
		sel.LearningIndicators = nil
		return sel
	}
	if !contains(c.subjects[sel.ClassLevel], sel.SubjectID) {
		sel.StrandID, sel.SubStrandID = "", ""
		sel.LearningIndicators = nil
		return sel
	}
	if !contains(c.strands[sel.SubjectID], sel.StrandID) {
		sel.SubStrandID = ""
		sel.LearningIndicators = nil
		return sel
	}
	if !contains(c.subStrands[sel.StrandID], sel.SubStrandID) {
		sel.LearningIndicators = nil
		return sel
	}
	var kept []string
	for _, ind := range sel.LearningIndicators {
		if _, ok := c.IndicatorName(sel.SubStrandID, ind); ok {
			kept = append(kept, ind)
		}
	}
	sel.LearningIndicators = kept
	return sel
}

// Describe expands a validated Selection into display names for prompt
// building. Unresolvable ids fall back to the raw id so a stale catalog
// never produces an empty prompt line.
func (c *Catalog) Describe(sel Selection) SelectionDetail {
	d := SelectionDetail{
		ClassGrade:  sel.ClassGrade,
		SubjectID:   sel.SubjectID,
		SubjectName: sel.SubjectID,
		StrandName:  sel.StrandID,
	}
	if name, ok := c.SubjectName(sel.SubjectID); ok {
		d.SubjectName = name
	}
	if name, ok := c.StrandName(sel.SubjectID, sel.StrandID); ok {
		d.StrandName = name
	}
	d.SubStrandName = sel.SubStrandID
	if name, ok := c.SubStrandName(sel.StrandID, sel.SubStrandID); ok {
		d.SubStrandName = name
	}
	for _, ind := range sel.LearningIndicators {
		name := ind
		if n, ok := c.IndicatorName(sel.SubStrandID, ind); ok {
			name = n
		}
		d.IndicatorNames = append(d.IndicatorNames, name)
	}
	return d
}

// SelectionDetail carries the human-readable names behind a Selection.
type SelectionDetail struct {
	ClassGrade     string
	SubjectID      string
	SubjectName    string
	StrandName     string
	SubStrandName  string
	IndicatorNames []string
}

func contains(opts []Option, id string) bool {
	for _, opt := range opts {
		if opt.ID == id {
			return true
		}
	}
	return false
}
