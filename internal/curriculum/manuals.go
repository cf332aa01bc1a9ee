package curriculum

import "fmt"

// Manual is one teacher manual in the built-in library.
type Manual struct {
	ID         string `json:"id"`
	FileName   string `json:"fileName"`
	ClassGrade string `json:"classGrade"`
	SubjectID  string `json:"subjectId"`
	FileURL    string `json:"fileUrl"`
}

var manuals = []Manual{
	{ID: "tm1", FileName: "JHS Science BS7 Teacher Manual.pdf", ClassGrade: "bs7", SubjectID: "sci_jhs", FileURL: "/manuals/science/jhs_science_bs7.pdf"},
	{ID: "tm2", FileName: "JHS Science BS8 Teacher Manual.pdf", ClassGrade: "bs8", SubjectID: "sci_jhs", FileURL: "/manuals/science/jhs_science_bs8.pdf"},
	{ID: "tm3", FileName: "JHS Math BS7 Teacher Manual.pdf", ClassGrade: "bs7", SubjectID: "math_jhs", FileURL: "/manuals/math/jhs_math_bs7.pdf"},
	{ID: "tm4", FileName: "SHS Computing Book 1 - Computer Architecture.pdf", ClassGrade: "shs1", SubjectID: "comp_shs", FileURL: "/manuals/computing/shs_computing_book1.pdf"},
	{ID: "tm5", FileName: "SHS Computing Book 2 - Programming & Web Dev.pdf", ClassGrade: "shs1", SubjectID: "comp_shs", FileURL: "/manuals/computing/shs_computing_book2.pdf"},
	{ID: "tm6", FileName: "SHS Biology SHS2 Teacher Manual.pdf", ClassGrade: "shs2", SubjectID: "bio_shs", FileURL: "/manuals/biology/shs_biology_shs2.pdf"},
	{ID: "tm7", FileName: "SHS Physics Book 1 - Mechanics and Energy.pdf", ClassGrade: "shs1", SubjectID: "phy_shs", FileURL: "/manuals/physics/shs_physics_book1.pdf"},
	{ID: "tm8", FileName: "SHS Physics Book 2 - Electromagnetism and Atomic Physics.pdf", ClassGrade: "shs1", SubjectID: "phy_shs", FileURL: "/manuals/physics/shs_physics_book2.pdf"},
	{ID: "tm9", FileName: "SHS Biology Book 1 - Sections 1-5.pdf", ClassGrade: "shs1", SubjectID: "bio_shs", FileURL: "/manuals/biology/shs_biology_book1.pdf"},
	{ID: "tm10", FileName: "SHS Biology Book 2 - Sections 5-8.pdf", ClassGrade: "shs1", SubjectID: "bio_shs", FileURL: "/manuals/biology/shs_biology_book2.pdf"},
	{ID: "tm11", FileName: "SHS General Science Book 1 - Sections 1-4.pdf", ClassGrade: "shs1", SubjectID: "sci_shs", FileURL: "/manuals/science/shs_general_science_book1.pdf"},
	{ID: "tm12", FileName: "SHS General Science Book 2 - Sections 5-9.pdf", ClassGrade: "shs1", SubjectID: "sci_shs", FileURL: "/manuals/science/shs_general_science_book2.pdf"},
	{ID: "tm13", FileName: "SHS Chemistry Year 1 Book 1 and Book 2.pdf", ClassGrade: "shs1", SubjectID: "chem_shs", FileURL: "/manuals/chemistry/SHS 1 Chemistry Year 1 Book 1 and Book2 Teacher-manual.pdf"},
}

// The bio5 ecology sub-strand is split across two volumes; energy flow
// relevance lives in book 2 even though the rest of the strand is book 1.
const energyFlowRelevanceIndicator = "Relevance of Energy Flow Determination Methods"

// UnmappedSelectionError is returned when no manual covers a selection.
// Resolution fails closed: an unmapped strand never falls through to a
// neighbouring book.
type UnmappedSelectionError struct {
	SubjectID string
	StrandID  string
}

func (e *UnmappedSelectionError) Error() string {
	return fmt.Sprintf("curriculum: no manual mapped for subject %q strand %q", e.SubjectID, e.StrandID)
}

// Manuals returns the full manual library.
func (c *Catalog) Manuals() []Manual { return c.manuals }

// ManualByID looks up one manual from the library.
func (c *Catalog) ManualByID(id string) (Manual, bool) {
	for _, m := range c.manuals {
		if m.ID == id {
			return m, true
		}
	}
	return Manual{}, false
}

// ResolveManual maps a validated Selection to the one manual that covers
// it. The table mirrors the printed volume boundaries of the manual
// library, so book splits live here and nowhere else.
func (c *Catalog) ResolveManual(sel Selection) (Manual, error) {
	id := ""
	switch sel.SubjectID {
	case "phy_shs":
		switch sel.StrandID {
		case "phy1", "phy2", "phy3", "phy4":
			id = "tm7"
		case "phy5", "phy6", "phy7", "phy8":
			id = "tm8"
		}
	case "comp_shs":
		switch sel.StrandID {
		case "comp1":
			id = "tm4"
		case "comp2", "comp3":
			id = "tm5"
		}
	case "bio_shs":
		switch sel.StrandID {
		case "bio1", "bio2", "bio3", "bio4", "bio5":
			id = "tm9"
			if sel.StrandID == "bio5" && sel.SubStrandID == "bio5_1" && c.selectsEnergyFlowRelevance(sel) {
				id = "tm10"
			}
		case "bio6", "bio7", "bio8":
			id = "tm10"
		}
	case "chem_shs":
		id = "tm13"
	case "sci_shs":
		switch sel.StrandID {
		case "sci1", "sci2", "sci3", "sci4":
			id = "tm11"
		case "sci5", "sci6", "sci7", "sci8", "sci9":
			id = "tm12"
		}
	}
	if id == "" {
		return Manual{}, &UnmappedSelectionError{SubjectID: sel.SubjectID, StrandID: sel.StrandID}
	}
	m, ok := c.ManualByID(id)
	if !ok {
		return Manual{}, &UnmappedSelectionError{SubjectID: sel.SubjectID, StrandID: sel.StrandID}
	}
	return m, nil
}

func (c *Catalog) selectsEnergyFlowRelevance(sel Selection) bool {
	for _, ind := range sel.LearningIndicators {
		name, ok := c.IndicatorName(sel.SubStrandID, ind)
		if !ok {
			continue
		}
		if name == energyFlowRelevanceIndicator {
			return true
		}
	}
	return false
}
