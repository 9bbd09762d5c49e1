package store

import (
	"time"

	"festa/internal/project/models"
)

type detailsRow struct {
	name, nameKana           string
	groupName, groupNameKana string
	description              string
	category                 string
	attributes               []string
	createdAt                time.Time
}

func (r detailsRow) decode() (models.Details, models.Category, models.AttributeSet, error) {
	details, err := models.NewDetails(r.name, r.nameKana, r.groupName, r.groupNameKana, r.description)
	if err != nil {
		return models.Details{}, "", 0, err
	}
	cat, err := models.ParseCategory(r.category)
	if err != nil {
		return models.Details{}, "", 0, err
	}
	attrs := make([]models.Attribute, len(r.attributes))
	for i, name := range r.attributes {
		if attrs[i], err = models.ParseAttribute(name); err != nil {
			return models.Details{}, "", 0, err
		}
	}
	set, err := models.NewAttributeSet(attrs...)
	if err != nil {
		return models.Details{}, "", 0, err
	}
	return details, cat, set, nil
}

func attributeNames(set models.AttributeSet) []string {
	out := []string{}
	for _, a := range set.Attributes() {
		out = append(out, a.String())
	}
	return out
}
