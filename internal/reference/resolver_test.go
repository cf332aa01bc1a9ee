package reference

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examgenius/exam-platform/internal/curriculum"
)

type stubDocumentStore struct {
	texts map[string]string
	err   error
}

func (s *stubDocumentStore) DocumentText(_ context.Context, _, documentID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	text, ok := s.texts[documentID]
	if !ok {
		return "", ErrNotFound
	}
	return text, nil
}

func physicsSelection(strand, subStrand string) curriculum.Selection {
	return curriculum.Selection{
		ClassLevel:  curriculum.LevelSHS,
		ClassGrade:  "shs1",
		SubjectID:   "phy_shs",
		StrandID:    strand,
		SubStrandID: subStrand,
	}
}

func TestResolveManualExcerpts(t *testing.T) {
	r := NewResolver(curriculum.Default(), &stubDocumentStore{})
	ctx := context.Background()

	text, err := r.Resolve(ctx, "u1", "tm4", curriculum.Selection{SubjectID: "comp_shs", StrandID: "comp1"})
	require.NoError(t, err)
	assert.Contains(t, text, "COMPUTING TEACHER'S MANUAL - BOOK 1")
	assert.Contains(t, text, "fetch-decode-execute")

	text, err = r.Resolve(ctx, "u1", "tm8", physicsSelection("phy6", "phy6_1"))
	require.NoError(t, err)
	assert.Contains(t, text, "PHYSICS TEACHER'S MANUAL - BOOK 2")
	assert.Contains(t, text, "Electrostatics and Magnetostatics")
	assert.Contains(t, text, "Gold Leaf Electroscope")
	assert.NotContains(t, text, "Refractive Index")
}

func TestResolvePhysicsSubStrandFallbackLabel(t *testing.T) {
	r := NewResolver(curriculum.Default(), &stubDocumentStore{})
	sel := physicsSelection("phy5", "")
	text, err := r.Resolve(context.Background(), "u1", "tm8", sel)
	require.NoError(t, err)
	assert.Contains(t, text, "SUB-STRAND: Physics Concepts")
}

func TestResolveGenericManual(t *testing.T) {
	r := NewResolver(curriculum.Default(), &stubDocumentStore{})
	sel := curriculum.Selection{
		ClassLevel:  curriculum.LevelSHS,
		ClassGrade:  "shs1",
		SubjectID:   "chem_shs",
		StrandID:    "chem1",
		SubStrandID: "chem1_2",
	}
	text, err := r.Resolve(context.Background(), "u1", "tm13", sel)
	require.NoError(t, err)
	assert.Contains(t, text, "chem_shs curriculum")
	assert.Contains(t, text, "Ghana Standard-Based Curriculum")
}

func TestResolveUploadedDocument(t *testing.T) {
	store := &stubDocumentStore{texts: map[string]string{
		"uploaded_abc": "extracted syllabus notes",
	}}
	r := NewResolver(curriculum.Default(), store)

	text, err := r.Resolve(context.Background(), "u1", "uploaded_abc", curriculum.Selection{})
	require.NoError(t, err)
	assert.Equal(t, "extracted syllabus notes", text)
}

func TestResolveNotFound(t *testing.T) {
	r := NewResolver(curriculum.Default(), &stubDocumentStore{texts: map[string]string{}})
	ctx := context.Background()

	_, err := r.Resolve(ctx, "u1", "tm99", curriculum.Selection{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Resolve(ctx, "u1", "uploaded_missing", curriculum.Selection{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Resolve(ctx, "u1", "random-id", curriculum.Selection{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveUploadedStoreError(t *testing.T) {
	boom := errors.New("connection reset")
	r := NewResolver(curriculum.Default(), &stubDocumentStore{err: boom})
	_, err := r.Resolve(context.Background(), "u1", "uploaded_abc", curriculum.Selection{})
	assert.ErrorIs(t, err, boom)
}
