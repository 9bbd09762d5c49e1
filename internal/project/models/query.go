package models

import (
	"fmt"
)

// MaxQueryConjunctions bounds the disjunction length of a Query. The bound keeps
// evaluation cost predictable when a query runs inline in a request.
const MaxQueryConjunctions = 16

// Facts is what a query needs to know about a project. Registered projects and
// projects still under registration both provide it.
type Facts interface {
	Category() Category
	Attributes() AttributeSet
}

// Conjunction matches projects of an optional category that carry at least the given
// attributes.
type Conjunction struct {
	Category   *Category
	Attributes AttributeSet
}

// Check reports whether p satisfies the conjunction.
func (c Conjunction) Check(p Facts) bool {
	if c.Category != nil && *c.Category != p.Category() {
		return false
	}
	return c.Attributes.IsSubsetOf(p.Attributes())
}

// SizeError is returned when a query exceeds its size bounds.
type SizeError struct {
	Max    int
	Actual int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("query has %d conjunctions, at most %d allowed", e.Actual, e.Max)
}

// Query is a disjunction of conjunctions over project category and attributes.
//
// Invariants:
//   - At most MaxQueryConjunctions conjunctions
//   - Every category referenced is valid
//   - Immutable after construction; Conjunctions returns a copy
type Query struct {
	conjunctions []Conjunction
}

// NewQuery validates and builds a Query. An empty list yields a query that matches
// no project.
func NewQuery(conjunctions []Conjunction) (Query, error) {
	if len(conjunctions) > MaxQueryConjunctions {
		return Query{}, &SizeError{Max: MaxQueryConjunctions, Actual: len(conjunctions)}
	}
	copied := make([]Conjunction, len(conjunctions))
	for i, c := range conjunctions {
		if c.Category != nil {
			if !c.Category.IsValid() {
				return Query{}, fmt.Errorf("conjunction %d: invalid category %q", i, *c.Category)
			}
			cat := *c.Category
			c.Category = &cat
		}
		copied[i] = c
	}
	return Query{conjunctions: copied}, nil
}

// MustQuery builds a Query, panicking if invalid.
func MustQuery(conjunctions ...Conjunction) Query {
	q, err := NewQuery(conjunctions)
	if err != nil {
		panic(err)
	}
	return q
}

// AlwaysQuery matches every project: one conjunction with no category and no
// required attributes.
func AlwaysQuery() Query {
	return Query{conjunctions: []Conjunction{{}}}
}

// Check reports whether p satisfies any conjunction.
func (q Query) Check(p Facts) bool {
	for _, c := range q.conjunctions {
		if c.Check(p) {
			return true
		}
	}
	return false
}

// Conjunctions returns a copy of the disjuncts in order.
func (q Query) Conjunctions() []Conjunction {
	out := make([]Conjunction, len(q.conjunctions))
	for i, c := range q.conjunctions {
		if c.Category != nil {
			cat := *c.Category
			c.Category = &cat
		}
		out[i] = c
	}
	return out
}

// Len returns the number of conjunctions.
func (q Query) Len() int {
	return len(q.conjunctions)
}

// IsEmpty reports whether the query can never match.
func (q Query) IsEmpty() bool {
	return len(q.conjunctions) == 0
}
