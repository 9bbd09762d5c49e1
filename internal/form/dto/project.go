package dto

import (
	projectModels "festa/internal/project/models"
	id "festa/pkg/domain"
)

// ProjectFacts is the part of a project that form targeting looks at.
type ProjectFacts struct {
	ID         id.ProjectID `json:"id" yaml:"id"`
	Category   string       `json:"category" yaml:"category"`
	Attributes []string     `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Target is a validated ProjectFacts usable with FormCondition.Check.
type Target struct {
	id         id.ProjectID
	category   projectModels.Category
	attributes projectModels.AttributeSet
}

func (t Target) ProjectID() id.ProjectID                { return t.id }
func (t Target) Category() projectModels.Category       { return t.category }
func (t Target) Attributes() projectModels.AttributeSet { return t.attributes }

func (p ProjectFacts) ToTarget() (Target, error) {
	cat, err := projectModels.ParseCategory(p.Category)
	if err != nil {
		return Target{}, err
	}
	attrs, err := parseAttributes(p.Attributes)
	if err != nil {
		return Target{}, err
	}
	return Target{id: p.ID, category: cat, attributes: attrs}, nil
}

func FromProject(p *projectModels.Project) ProjectFacts {
	return ProjectFacts{
		ID:         p.ID,
		Category:   p.Category().String(),
		Attributes: attributeNames(p.Attributes()),
	}
}
