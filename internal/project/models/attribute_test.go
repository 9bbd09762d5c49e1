package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allSets enumerates every subset of the attribute universe.
func allSets() []AttributeSet {
	n := 1 << len(attributeOrder)
	sets := make([]AttributeSet, 0, n)
	for i := 0; i < n; i++ {
		sets = append(sets, AttributeSet(i))
	}
	return sets
}

func TestNewAttributeSet(t *testing.T) {
	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := NewAttributeSet(AttributeAcademic, AttributeArtistic, AttributeAcademic)
		var dup *DuplicatedAttributesError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, AttributeAcademic, dup.Attribute)
	})

	t.Run("rejects unknown attribute", func(t *testing.T) {
		_, err := NewAttributeSet(Attribute("sports"))
		require.Error(t, err)
	})

	t.Run("lists members in canonical order", func(t *testing.T) {
		set := MustAttributeSet(AttributeOutdoor, AttributeAcademic)
		assert.Equal(t, []Attribute{AttributeAcademic, AttributeOutdoor}, set.Attributes())
		assert.Equal(t, 2, set.Len())
		assert.Equal(t, "{academic,outdoor}", set.String())
	})

	t.Run("empty set", func(t *testing.T) {
		set, err := NewAttributeSet()
		require.NoError(t, err)
		assert.True(t, set.IsEmpty())
		assert.Empty(t, set.Attributes())
	})
}

// TestSubsetLaw checks IsSubsetOf against its element-wise definition for every pair
// of sets in the universe.
func TestSubsetLaw(t *testing.T) {
	for _, a := range allSets() {
		assert.True(t, a.IsSubsetOf(a), "reflexive for %s", a)
		for _, b := range allSets() {
			want := true
			for _, attr := range a.Attributes() {
				if !b.Contains(attr) {
					want = false
				}
			}
			assert.Equal(t, want, a.IsSubsetOf(b), "%s ⊆ %s", a, b)
		}
	}
}

func TestUnion(t *testing.T) {
	a := MustAttributeSet(AttributeAcademic)
	b := MustAttributeSet(AttributeArtistic, AttributeAcademic)
	u := a.Union(b)
	assert.True(t, a.IsSubsetOf(u))
	assert.True(t, b.IsSubsetOf(u))
	assert.Equal(t, 2, u.Len())
}

func TestParseAttribute(t *testing.T) {
	a, err := ParseAttribute("committee")
	require.NoError(t, err)
	assert.Equal(t, AttributeCommittee, a)

	_, err = ParseAttribute("Committee")
	assert.Error(t, err)
}
