// Package models describes shared files as far as form answers need them: a media
// type to check against File items and a size that counts toward the owner's quota.
package models

import (
	"time"

	id "festa/pkg/domain"
	dErrors "festa/pkg/domain-errors"
)

// Sharing is a file made available to forms by its owner.
type Sharing struct {
	ID        id.FileSharingID
	OwnerID   id.UserID
	Type      string
	Size      uint64
	CreatedAt time.Time
}

func NewSharing(sharingID id.FileSharingID, ownerID id.UserID, mediaType string, size uint64, now time.Time) (*Sharing, error) {
	if sharingID == (id.FileSharingID{}) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "file sharing id required")
	}
	if mediaType == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "file media type required")
	}
	return &Sharing{ID: sharingID, OwnerID: ownerID, Type: mediaType, Size: size, CreatedAt: now}, nil
}
