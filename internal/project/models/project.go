package models

import (
	"fmt"
	"time"

	"festa/pkg/bound"
	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
)

const (
	MaxProjectIndex         = 999
	maxProjectNameLen       = 128
	maxProjectKanaLen       = 256
	maxProjectDescriptionLn = 1024
)

// Details holds the descriptive fields shared by registered and pending projects.
type Details struct {
	Name          bound.String
	NameKana      bound.Kana
	GroupName     bound.String
	GroupNameKana bound.Kana
	Description   bound.String
}

// NewDetails validates the descriptive fields of a project.
func NewDetails(name, nameKana, groupName, groupNameKana, description string) (Details, error) {
	n, err := bound.NewNonEmptyString(name, maxProjectNameLen)
	if err != nil {
		return Details{}, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "invalid project name")
	}
	nk, err := bound.NewKana(nameKana, maxProjectKanaLen)
	if err != nil {
		return Details{}, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "invalid project name kana")
	}
	g, err := bound.NewNonEmptyString(groupName, maxProjectNameLen)
	if err != nil {
		return Details{}, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "invalid group name")
	}
	gk, err := bound.NewKana(groupNameKana, maxProjectKanaLen)
	if err != nil {
		return Details{}, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "invalid group name kana")
	}
	d, err := bound.NewString(description, 0, maxProjectDescriptionLn)
	if err != nil {
		return Details{}, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "invalid project description")
	}
	return Details{Name: n, NameKana: nk, GroupName: g, GroupNameKana: gk, Description: d}, nil
}

// Project is the aggregate root for a registered festival project.
//
// Invariants:
//   - Index is within [0, MaxProjectIndex] and, together with Category, yields Code
//   - OwnerID and SubownerID differ
//   - Category is valid
type Project struct {
	ID         id.ProjectID
	Index      int
	OwnerID    id.UserID
	SubownerID id.UserID
	Details    Details
	category   Category
	attributes AttributeSet
	CreatedAt  time.Time
}

// NewProject constructs a registered project.
func NewProject(
	projectID id.ProjectID,
	index int,
	ownerID, subownerID id.UserID,
	details Details,
	category Category,
	attributes AttributeSet,
	now time.Time,
) (*Project, error) {
	if _, err := bound.NewInt(int64(index), 0, MaxProjectIndex); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "invalid project index")
	}
	if ownerID == subownerID {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "owner and subowner must be different users")
	}
	if !category.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "invalid project category")
	}
	return &Project{
		ID:         projectID,
		Index:      index,
		OwnerID:    ownerID,
		SubownerID: subownerID,
		Details:    details,
		category:   category,
		attributes: attributes,
		CreatedAt:  now,
	}, nil
}

// ProjectID returns ID; it lets targeting code depend on an interface.
func (p *Project) ProjectID() id.ProjectID {
	return p.ID
}

func (p *Project) Category() Category {
	return p.category
}

func (p *Project) Attributes() AttributeSet {
	return p.attributes
}

// Code is the public project code, e.g. "G007" for the 8th general project.
func (p *Project) Code() string {
	return fmt.Sprintf("%c%03d", p.category.codeLetter(), p.Index)
}

// IsMember reports whether the user owns or co-owns the project.
func (p *Project) IsMember(userID id.UserID) bool {
	return p.OwnerID == userID || p.SubownerID == userID
}

// PendingProject is a project under registration. It has no index yet and only one
// owner; registration forms are answered against it.
type PendingProject struct {
	ID         id.PendingProjectID
	OwnerID    id.UserID
	Details    Details
	category   Category
	attributes AttributeSet
	CreatedAt  time.Time
}

// NewPendingProject constructs a pending project.
func NewPendingProject(
	pendingID id.PendingProjectID,
	ownerID id.UserID,
	details Details,
	category Category,
	attributes AttributeSet,
	now time.Time,
) (*PendingProject, error) {
	if !category.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "invalid project category")
	}
	return &PendingProject{
		ID:         pendingID,
		OwnerID:    ownerID,
		Details:    details,
		category:   category,
		attributes: attributes,
		CreatedAt:  now,
	}, nil
}

func (p *PendingProject) Category() Category {
	return p.category
}

func (p *PendingProject) Attributes() AttributeSet {
	return p.attributes
}
