package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "festa/pkg/domain"
)

func TestItemConditions_Evaluate(t *testing.T) {
	checkboxItem, radioItem, gridItem := newItemID(), newItemID(), newItemID()
	boxX, boxY := newBoxID(), newBoxID()
	buttonA, buttonB := newButtonID(), newButtonID()
	colP, colQ := newColumnID(), newColumnID()

	prior := fakeLookup{
		checked:  map[id.FormItemID][]id.CheckboxID{checkboxItem: {boxX}},
		radio:    map[id.FormItemID]id.RadioButtonID{radioItem: buttonA},
		gridCols: map[id.FormItemID][]id.GridRadioColumnID{gridItem: {colP}},
	}

	tests := []struct {
		name string
		dnf  [][]ItemCondition
		want bool
	}{
		{
			name: "checked box expected checked",
			dnf:  [][]ItemCondition{{CheckboxCondition{ItemID: checkboxItem, CheckboxID: boxX, Expected: true}}},
			want: true,
		},
		{
			name: "unchecked box expected unchecked",
			dnf:  [][]ItemCondition{{CheckboxCondition{ItemID: checkboxItem, CheckboxID: boxY, Expected: false}}},
			want: true,
		},
		{
			name: "radio selection mismatch",
			dnf:  [][]ItemCondition{{RadioCondition{ItemID: radioItem, ButtonID: buttonB, Expected: true}}},
			want: false,
		},
		{
			name: "radio not selected expected",
			dnf:  [][]ItemCondition{{RadioCondition{ItemID: radioItem, ButtonID: buttonB, Expected: false}}},
			want: true,
		},
		{
			name: "grid column chosen by some row",
			dnf:  [][]ItemCondition{{GridRadioCondition{ItemID: gridItem, ColumnID: colP, Expected: true}}},
			want: true,
		},
		{
			name: "conjunction fails when one literal fails",
			dnf: [][]ItemCondition{{
				CheckboxCondition{ItemID: checkboxItem, CheckboxID: boxX, Expected: true},
				GridRadioCondition{ItemID: gridItem, ColumnID: colQ, Expected: true},
			}},
			want: false,
		},
		{
			name: "any conjunction suffices",
			dnf: [][]ItemCondition{
				{GridRadioCondition{ItemID: gridItem, ColumnID: colQ, Expected: true}},
				{RadioCondition{ItemID: radioItem, ButtonID: buttonA, Expected: true}},
			},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conds, err := NewItemConditions(tt.dnf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, conds.Evaluate(prior))
		})
	}
}

func TestItemConditions_UnansweredReferenceIsNotSelected(t *testing.T) {
	item := newItemID()
	empty := fakeLookup{}

	selected := MustItemConditions([]ItemCondition{RadioCondition{ItemID: item, ButtonID: newButtonID(), Expected: true}})
	assert.False(t, selected.Evaluate(empty))

	notChecked := MustItemConditions([]ItemCondition{CheckboxCondition{ItemID: item, CheckboxID: newBoxID(), Expected: false}})
	assert.True(t, notChecked.Evaluate(empty))
}

func TestNewItemConditions_Bounds(t *testing.T) {
	lit := CheckboxCondition{ItemID: newItemID(), CheckboxID: newBoxID(), Expected: true}

	_, err := NewItemConditions(nil)
	require.Error(t, err)

	_, err = NewItemConditions([][]ItemCondition{{}})
	require.Error(t, err)

	_, err = NewItemConditions([][]ItemCondition{{lit, nil}})
	require.Error(t, err)

	tooWide := make([]ItemCondition, MaxConditionLiterals+1)
	for i := range tooWide {
		tooWide[i] = lit
	}
	_, err = NewItemConditions([][]ItemCondition{tooWide})
	require.Error(t, err)

	tooLong := make([][]ItemCondition, MaxConditionConjunctions+1)
	for i := range tooLong {
		tooLong[i] = []ItemCondition{lit}
	}
	_, err = NewItemConditions(tooLong)
	require.Error(t, err)

	atLimit, err := NewItemConditions(tooLong[:MaxConditionConjunctions])
	require.NoError(t, err)
	assert.Len(t, atLimit.Conjunctions(), MaxConditionConjunctions)
}

func TestItemConditions_ConjunctionsAreCopied(t *testing.T) {
	lit := CheckboxCondition{ItemID: newItemID(), CheckboxID: newBoxID(), Expected: true}
	input := [][]ItemCondition{{lit}}
	conds := MustItemConditions(input...)

	input[0][0] = RadioCondition{}
	out := conds.Conjunctions()
	out[0][0] = RadioCondition{}

	assert.Equal(t, lit, conds.Conjunctions()[0][0])
}
