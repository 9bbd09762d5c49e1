package models

import (
	"fmt"

	projectModels "festa/internal/project/models"
	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
)

// MaxProjectIDSet bounds the explicit include and exclude lists of a form.
const MaxProjectIDSet = 1024

// TargetProject is what form targeting needs to know about a project.
type TargetProject interface {
	projectModels.Facts
	ProjectID() id.ProjectID
}

// ProjectIDSet is a duplicate-free set of at most MaxProjectIDSet project ids. The
// insertion order is kept for round-trips.
type ProjectIDSet struct {
	ordered []id.ProjectID
	index   map[id.ProjectID]struct{}
}

func NewProjectIDSet(ids []id.ProjectID) (ProjectIDSet, error) {
	if len(ids) > MaxProjectIDSet {
		return ProjectIDSet{}, dErrors.New(dErrors.CodeInvariantViolation,
			fmt.Sprintf("project id set size %d exceeds %d", len(ids), MaxProjectIDSet))
	}
	index := make(map[id.ProjectID]struct{}, len(ids))
	for _, pid := range ids {
		if _, dup := index[pid]; dup {
			return ProjectIDSet{}, dErrors.New(dErrors.CodeInvariantViolation, "duplicated project id "+pid.String())
		}
		index[pid] = struct{}{}
	}
	return ProjectIDSet{ordered: append([]id.ProjectID(nil), ids...), index: index}, nil
}

// MustProjectIDSet creates a ProjectIDSet, panicking if invalid.
func MustProjectIDSet(ids ...id.ProjectID) ProjectIDSet {
	s, err := NewProjectIDSet(ids)
	if err != nil {
		panic(err)
	}
	return s
}

func (s ProjectIDSet) Contains(pid id.ProjectID) bool {
	_, ok := s.index[pid]
	return ok
}

func (s ProjectIDSet) Len() int { return len(s.ordered) }

// IDs returns the members in insertion order.
func (s ProjectIDSet) IDs() []id.ProjectID {
	return append([]id.ProjectID(nil), s.ordered...)
}

// FormCondition decides which projects a form applies to.
type FormCondition struct {
	Query    projectModels.Query
	Includes ProjectIDSet
	Excludes ProjectIDSet
}

// Check reports whether the project is targeted: it must not be excluded, and it must
// either satisfy the query or be listed in Includes. Exclusion wins over both.
func (c FormCondition) Check(p TargetProject) bool {
	if c.Excludes.Contains(p.ProjectID()) {
		return false
	}
	return c.Query.Check(p) || c.Includes.Contains(p.ProjectID())
}
