package formtest

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	projectModels "festa/internal/project/models"
	id "festa/pkg/domain"
)

var nextIndex atomic.Int64

func details() projectModels.Details {
	return must(projectModels.NewDetails("焼きそば屋", "ヤキソバヤ", "料理研究会", "リョウリケンキュウカイ", ""))
}

// NewProject returns a project owned by ownerID with a random co-owner. Indexes are
// handed out in sequence so fixtures never collide on their code.
func NewProject(ownerID id.UserID, category projectModels.Category, attrs ...projectModels.Attribute) *projectModels.Project {
	index := int(nextIndex.Add(1) % (projectModels.MaxProjectIndex + 1))
	return must(projectModels.NewProject(
		id.ProjectID(uuid.New()), index, ownerID, id.UserID(uuid.New()),
		details(), category, projectModels.MustAttributeSet(attrs...),
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	))
}

func NewPendingProject(ownerID id.UserID, category projectModels.Category, attrs ...projectModels.Attribute) *projectModels.PendingProject {
	return must(projectModels.NewPendingProject(
		id.PendingProjectID(uuid.New()), ownerID, details(), category,
		projectModels.MustAttributeSet(attrs...),
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	))
}
