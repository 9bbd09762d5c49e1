package service

import (
	"context"
	"fmt"

	userModels "festa/internal/user/models"
	dErrors "festa/pkg/domain-errors"
)

// CheckFileQuota reports whether a user who already stores used bytes may add
// incoming more. Roles without a quota always pass.
func CheckFileQuota(user *userModels.User, used, incoming uint64) error {
	quota, limited := user.Role.FileUsageQuota()
	if !limited {
		return nil
	}
	if incoming > quota || used > quota-incoming {
		return dErrors.New(dErrors.CodeQuotaExceeded,
			fmt.Sprintf("file usage %d + %d bytes exceeds the %s quota of %d bytes", used, incoming, user.Role, quota))
	}
	return nil
}

// EnsureFileQuota loads the user's current usage and applies CheckFileQuota.
func (s *Service) EnsureFileQuota(ctx context.Context, user *userModels.User, incoming uint64) error {
	if err := requirePermissions(user, userModels.CreateFiles); err != nil {
		return err
	}
	used, err := s.files.SumUsage(ctx, user.ID)
	if err != nil {
		return storeError(err, "file usage")
	}
	return CheckFileQuota(user, used, incoming)
}
