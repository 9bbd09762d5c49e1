package models

import (
	"fmt"
	"strings"

	dErrors "festa/pkg/domain-errors"
)

// Attribute is a project trait drawn from a small closed universe.
type Attribute string

const (
	AttributeAcademic  Attribute = "academic"
	AttributeArtistic  Attribute = "artistic"
	AttributeCommittee Attribute = "committee"
	AttributeOutdoor   Attribute = "outdoor"
)

// attributeOrder fixes both the bit position and the canonical listing order.
var attributeOrder = []Attribute{
	AttributeAcademic,
	AttributeArtistic,
	AttributeCommittee,
	AttributeOutdoor,
}

// ParseAttribute constructs an Attribute from external input.
func ParseAttribute(s string) (Attribute, error) {
	a := Attribute(s)
	if _, ok := a.bit(); !ok {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid project attribute: "+s)
	}
	return a, nil
}

func (a Attribute) String() string {
	return string(a)
}

func (a Attribute) bit() (AttributeSet, bool) {
	for i, known := range attributeOrder {
		if known == a {
			return AttributeSet(1 << i), true
		}
	}
	return 0, false
}

// DuplicatedAttributesError is returned when an attribute is listed twice.
type DuplicatedAttributesError struct {
	Attribute Attribute
}

func (e *DuplicatedAttributesError) Error() string {
	return fmt.Sprintf("duplicated project attribute: %s", e.Attribute)
}

// AttributeSet is a set of attributes represented as a bitset.
// The zero value is the empty set.
type AttributeSet uint8

// NewAttributeSet builds a set, rejecting unknown and repeated attributes.
func NewAttributeSet(attrs ...Attribute) (AttributeSet, error) {
	var set AttributeSet
	for _, a := range attrs {
		b, ok := a.bit()
		if !ok {
			return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid project attribute: "+string(a))
		}
		if set&b != 0 {
			return 0, &DuplicatedAttributesError{Attribute: a}
		}
		set |= b
	}
	return set, nil
}

// MustAttributeSet builds a set, panicking if invalid.
func MustAttributeSet(attrs ...Attribute) AttributeSet {
	set, err := NewAttributeSet(attrs...)
	if err != nil {
		panic(err)
	}
	return set
}

// IsSubsetOf reports whether every attribute in s is also in other.
func (s AttributeSet) IsSubsetOf(other AttributeSet) bool {
	return s&other == s
}

// Union returns the attributes present in either set.
func (s AttributeSet) Union(other AttributeSet) AttributeSet {
	return s | other
}

// Contains reports membership of a single attribute.
func (s AttributeSet) Contains(a Attribute) bool {
	b, ok := a.bit()
	return ok && s&b != 0
}

func (s AttributeSet) IsEmpty() bool {
	return s == 0
}

// Len returns the number of attributes in the set.
func (s AttributeSet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Attributes lists the members in canonical order.
func (s AttributeSet) Attributes() []Attribute {
	out := make([]Attribute, 0, s.Len())
	for _, a := range attributeOrder {
		if s.Contains(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s AttributeSet) String() string {
	names := make([]string, 0, s.Len())
	for _, a := range s.Attributes() {
		names = append(names, string(a))
	}
	return "{" + strings.Join(names, ",") + "}"
}
