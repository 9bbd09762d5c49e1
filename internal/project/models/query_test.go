package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type facts struct {
	category   Category
	attributes AttributeSet
}

func (f facts) Category() Category       { return f.category }
func (f facts) Attributes() AttributeSet { return f.attributes }

func categoryPtr(c Category) *Category {
	return &c
}

func TestQueryCheck(t *testing.T) {
	academicGeneral := Conjunction{
		Category:   categoryPtr(CategoryGeneral),
		Attributes: MustAttributeSet(AttributeAcademic),
	}
	anyOutdoor := Conjunction{Attributes: MustAttributeSet(AttributeOutdoor)}

	tests := []struct {
		name    string
		query   Query
		project facts
		want    bool
	}{
		{
			name:    "empty query never matches",
			query:   MustQuery(),
			project: facts{CategoryGeneral, 0},
			want:    false,
		},
		{
			name:    "always query matches anything",
			query:   AlwaysQuery(),
			project: facts{CategoryFood, MustAttributeSet(AttributeOutdoor)},
			want:    true,
		},
		{
			name:    "category and attribute subset",
			query:   MustQuery(academicGeneral),
			project: facts{CategoryGeneral, MustAttributeSet(AttributeAcademic, AttributeArtistic)},
			want:    true,
		},
		{
			name:    "wrong category",
			query:   MustQuery(academicGeneral),
			project: facts{CategoryStage, MustAttributeSet(AttributeAcademic)},
			want:    false,
		},
		{
			name:    "missing attribute",
			query:   MustQuery(academicGeneral),
			project: facts{CategoryGeneral, MustAttributeSet(AttributeArtistic)},
			want:    false,
		},
		{
			name:    "second disjunct matches",
			query:   MustQuery(academicGeneral, anyOutdoor),
			project: facts{CategoryFood, MustAttributeSet(AttributeOutdoor)},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Check(tt.project))
		})
	}
}

func TestNewQuery_SizeBound(t *testing.T) {
	conjunctions := make([]Conjunction, MaxQueryConjunctions+1)
	_, err := NewQuery(conjunctions)
	var sizeErr *SizeError
	require.True(t, errors.As(err, &sizeErr))
	assert.Equal(t, MaxQueryConjunctions+1, sizeErr.Actual)

	_, err = NewQuery(conjunctions[:MaxQueryConjunctions])
	assert.NoError(t, err)
}

func TestNewQuery_RejectsInvalidCategory(t *testing.T) {
	_, err := NewQuery([]Conjunction{{Category: categoryPtr("circus")}})
	assert.Error(t, err)
}

func TestQuery_Immutable(t *testing.T) {
	cat := CategoryGeneral
	input := []Conjunction{{Category: &cat}}
	q, err := NewQuery(input)
	require.NoError(t, err)

	cat = CategoryStage
	input[0].Attributes = MustAttributeSet(AttributeAcademic)
	assert.True(t, q.Check(facts{CategoryGeneral, 0}))

	out := q.Conjunctions()
	*out[0].Category = CategoryFood
	assert.True(t, q.Check(facts{CategoryGeneral, 0}))
}

// TestQueryMonotonicity: adding a conjunction never makes a matching project stop
// matching.
func TestQueryMonotonicity(t *testing.T) {
	candidates := []Conjunction{
		{},
		{Category: categoryPtr(CategoryGeneral)},
		{Attributes: MustAttributeSet(AttributeAcademic)},
		{Category: categoryPtr(CategoryStage), Attributes: MustAttributeSet(AttributeArtistic, AttributeOutdoor)},
		{Category: categoryPtr(CategoryFood), Attributes: MustAttributeSet(AttributeCommittee)},
	}

	var projects []facts
	for _, c := range Categories() {
		for _, set := range allSets() {
			projects = append(projects, facts{c, set})
		}
	}

	for i := range candidates {
		base := MustQuery(candidates[:i]...)
		extended := MustQuery(candidates[:i+1]...)
		for _, p := range projects {
			if base.Check(p) {
				assert.True(t, extended.Check(p), "project %v lost match after adding conjunction %d", p, i)
			}
		}
	}
}
