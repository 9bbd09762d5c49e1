package store

import (
	"context"
	"sync"

	"festa/internal/project/models"
	id "festa/pkg/domain"
	"festa/pkg/platform/sentinel"
)

// InMemory stores registered and pending projects in maps.
type InMemory struct {
	mu       sync.RWMutex
	projects map[id.ProjectID]*models.Project
	pending  map[id.PendingProjectID]*models.PendingProject
}

func NewInMemory() *InMemory {
	return &InMemory{
		projects: make(map[id.ProjectID]*models.Project),
		pending:  make(map[id.PendingProjectID]*models.PendingProject),
	}
}

// CreateProject rejects a second project with the same id or the same code.
func (s *InMemory) CreateProject(_ context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[p.ID]; ok {
		return sentinel.ErrConflict
	}
	for _, other := range s.projects {
		if other.Code() == p.Code() {
			return sentinel.ErrConflict
		}
	}
	s.projects[p.ID] = p
	return nil
}

func (s *InMemory) FindProject(_ context.Context, projectID id.ProjectID) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[projectID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return p, nil
}

func (s *InMemory) CreatePendingProject(_ context.Context, p *models.PendingProject) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[p.ID]; ok {
		return sentinel.ErrConflict
	}
	s.pending[p.ID] = p
	return nil
}

func (s *InMemory) FindPendingProject(_ context.Context, pendingID id.PendingProjectID) (*models.PendingProject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pending[pendingID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return p, nil
}
