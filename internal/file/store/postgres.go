package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"festa/internal/file/models"
	id "festa/pkg/domain"
	"festa/pkg/platform/sentinel"
	"festa/pkg/platform/tx"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateSharing(ctx context.Context, sh *models.Sharing) error {
	_, err := tx.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO file_sharings (id, owner_id, type, size, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.UUID(sh.ID), uuid.UUID(sh.OwnerID), sh.Type, int64(sh.Size), sh.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create file sharing: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindTypes(ctx context.Context, ids []id.FileSharingID) (map[id.FileSharingID]string, error) {
	out := make(map[id.FileSharingID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	raw := make([]string, len(ids))
	for i, sid := range ids {
		raw[i] = sid.String()
	}
	rows, err := tx.Conn(ctx, s.db).QueryContext(ctx,
		`SELECT id, type FROM file_sharings WHERE id = ANY($1::uuid[])`, pq.Array(raw))
	if err != nil {
		return nil, fmt.Errorf("find file types: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			sid       uuid.UUID
			mediaType string
		)
		if err := rows.Scan(&sid, &mediaType); err != nil {
			return nil, fmt.Errorf("find file types: %w", err)
		}
		out[id.FileSharingID(sid)] = mediaType
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find file types: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) SumUsage(ctx context.Context, ownerID id.UserID) (uint64, error) {
	var total int64
	err := tx.Conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT COALESCE(SUM(size), 0) FROM file_sharings WHERE owner_id = $1`, uuid.UUID(ownerID)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum file usage: %w", err)
	}
	return uint64(total), nil
}
