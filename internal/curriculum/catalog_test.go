package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSHSSelection() Selection {
	return Selection{
		ClassLevel:         LevelSHS,
		ClassGrade:         "shs1",
		SubjectID:          "comp_shs",
		StrandID:           "comp1",
		SubStrandID:        "comp1_1",
		LearningIndicators: []string{"li_comp1_1_1", "li_comp1_1_6"},
	}
}

func TestValidateAcceptsCatalogChain(t *testing.T) {
	c := Default()
	assert.NoError(t, c.Validate(validSHSSelection()))
}

func TestValidateRejectsFirstBrokenLink(t *testing.T) {
	c := Default()

	tests := []struct {
		name   string
		mutate func(*Selection)
		field  string
	}{
		{"unknown level", func(s *Selection) { s.ClassLevel = "PRIMARY" }, "classLevel"},
		{"grade from other level", func(s *Selection) { s.ClassGrade = "bs7" }, "classGrade"},
		{"subject from other level", func(s *Selection) { s.SubjectID = "math_jhs" }, "subjectId"},
		{"strand from other subject", func(s *Selection) { s.StrandID = "phy1" }, "strandId"},
		{"sub-strand from other strand", func(s *Selection) { s.SubStrandID = "comp2_1" }, "subStrandId"},
		{"indicator from other sub-strand", func(s *Selection) { s.LearningIndicators = []string{"li_comp2_1_1"} }, "learningIndicators"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := validSHSSelection()
			tt.mutate(&sel)
			err := c.Validate(sel)
			require.Error(t, err)
			var inv *InvalidSelectionError
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, tt.field, inv.Field)
		})
	}
}

func TestNormalizeClearsDownstreamOfBrokenLink(t *testing.T) {
	c := Default()

	cleared := func(s Selection) Selection {
		s.LearningIndicators = nil
		return s
	}

	tests := []struct {
		name   string
		mutate func(*Selection)
		want   func(Selection) Selection
	}{
		{"unknown level", func(s *Selection) { s.ClassLevel = "PRIMARY" }, func(s Selection) Selection {
			s.ClassGrade, s.SubjectID, s.StrandID, s.SubStrandID = "", "", "", ""
			return cleared(s)
		}},
		{"empty grade", func(s *Selection) { s.ClassGrade = "" }, func(s Selection) Selection {
			s.SubjectID, s.StrandID, s.SubStrandID = "", "", ""
			return cleared(s)
		}},
		{"subject from other level", func(s *Selection) { s.SubjectID = "math_jhs" }, func(s Selection) Selection {
			s.StrandID, s.SubStrandID = "", ""
			return cleared(s)
		}},
		{"strand from other subject", func(s *Selection) { s.StrandID = "phy1" }, func(s Selection) Selection {
			s.SubStrandID = ""
			return cleared(s)
		}},
		{"sub-strand from other strand", func(s *Selection) { s.SubStrandID = "comp2_1" }, cleared},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := validSHSSelection()
			tt.mutate(&sel)
			assert.Equal(t, tt.want(sel), c.Normalize(sel))
		})
	}
}

func TestNormalizeDropsUnknownIndicators(t *testing.T) {
	c := Default()
	sel := validSHSSelection()
	sel.LearningIndicators = []string{"li_comp1_1_1", "li_comp2_1_1"}
	got := c.Normalize(sel)
	assert.Equal(t, []string{"li_comp1_1_1"}, got.LearningIndicators)
}

func TestNormalizeIsIdentityOnValidSelection(t *testing.T) {
	c := Default()
	sel := validSHSSelection()
	require.NoError(t, c.Validate(sel))
	assert.Equal(t, sel, c.Normalize(sel))
}

func TestGradesPerLevel(t *testing.T) {
	c := Default()
	assert.Len(t, c.Grades(LevelJHS), 3)
	assert.Len(t, c.Grades(LevelSHS), 3)
	assert.Nil(t, c.Grades("TVET"))
}

func TestDescribeFallsBackToRawIDs(t *testing.T) {
	c := Default()
	sel := validSHSSelection()
	d := c.Describe(sel)
	assert.Equal(t, "Computing", d.SubjectName)
	assert.Equal(t, "Computer Architecture and Organisation", d.StrandName)
	assert.Equal(t, "1.1: Data Storage and Manipulation", d.SubStrandName)
	require.Len(t, d.IndicatorNames, 2)
	assert.Equal(t, "Describe data as bit pattern representations", d.IndicatorNames[0])

	// unknown ids pass through unchanged rather than vanishing
	sel.LearningIndicators = []string{"li_missing"}
	d = c.Describe(sel)
	assert.Equal(t, []string{"li_missing"}, d.IndicatorNames)
}

func TestResolveManualVolumeBoundaries(t *testing.T) {
	c := Default()

	tests := []struct {
		name    string
		subject string
		strand  string
		want    string
	}{
		{"physics book 1", "phy_shs", "phy1", "tm7"},
		{"physics book 1 upper bound", "phy_shs", "phy4", "tm7"},
		{"physics book 2", "phy_shs", "phy5", "tm8"},
		{"computing book 1", "comp_shs", "comp1", "tm4"},
		{"computing book 2", "comp_shs", "comp3", "tm5"},
		{"biology book 1", "bio_shs", "bio3", "tm9"},
		{"biology book 2", "bio_shs", "bio7", "tm10"},
		{"chemistry combined", "chem_shs", "chem2", "tm13"},
		{"general science book 1", "sci_shs", "sci4", "tm11"},
		{"general science book 2", "sci_shs", "sci5", "tm12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := c.ResolveManual(Selection{SubjectID: tt.subject, StrandID: tt.strand})
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.ID)
		})
	}
}

func TestResolveManualEcologySplit(t *testing.T) {
	c := Default()

	sel := Selection{
		SubjectID:          "bio_shs",
		StrandID:           "bio5",
		SubStrandID:        "bio5_1",
		LearningIndicators: []string{"li_bio5_1_1"},
	}
	m, err := c.ResolveManual(sel)
	require.NoError(t, err)
	assert.Equal(t, "tm9", m.ID)

	// the one ecology indicator printed in book 2
	sel.LearningIndicators = []string{"li_bio5_1_1", "li_bio5_1_8"}
	m, err = c.ResolveManual(sel)
	require.NoError(t, err)
	assert.Equal(t, "tm10", m.ID)
}

func TestResolveManualFailsClosed(t *testing.T) {
	c := Default()
	_, err := c.ResolveManual(Selection{SubjectID: "math_jhs", StrandID: "m1"})
	var unmapped *UnmappedSelectionError
	require.ErrorAs(t, err, &unmapped)
	assert.Equal(t, "math_jhs", unmapped.SubjectID)
}
