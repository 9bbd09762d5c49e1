package store

import (
	"context"
	"sync"

	"festa/internal/file/models"
	id "festa/pkg/domain"
	"festa/pkg/platform/sentinel"
)

type InMemory struct {
	mu       sync.RWMutex
	sharings map[id.FileSharingID]*models.Sharing
}

func NewInMemory() *InMemory {
	return &InMemory{sharings: make(map[id.FileSharingID]*models.Sharing)}
}

func (s *InMemory) CreateSharing(_ context.Context, sh *models.Sharing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sharings[sh.ID]; ok {
		return sentinel.ErrConflict
	}
	s.sharings[sh.ID] = sh
	return nil
}

// FindTypes maps each known sharing id to its media type. Unknown ids are left out.
func (s *InMemory) FindTypes(_ context.Context, ids []id.FileSharingID) (map[id.FileSharingID]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[id.FileSharingID]string, len(ids))
	for _, sid := range ids {
		if sh, ok := s.sharings[sid]; ok {
			out[sid] = sh.Type
		}
	}
	return out, nil
}

// SumUsage totals the size of every file the user owns.
func (s *InMemory) SumUsage(_ context.Context, ownerID id.UserID) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total uint64
	for _, sh := range s.sharings {
		if sh.OwnerID == ownerID {
			total += sh.Size
		}
	}
	return total, nil
}
