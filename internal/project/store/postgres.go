package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"festa/internal/project/models"
	id "festa/pkg/domain"
	"festa/pkg/platform/sentinel"
	"festa/pkg/platform/tx"
)

// PostgresStore persists projects in PostgreSQL. Rows are rebuilt through the model
// constructors, so a row that no longer satisfies them is reported as an error.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateProject(ctx context.Context, p *models.Project) error {
	d := p.Details
	_, err := tx.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO projects (id, index, owner_id, subowner_id, name, name_kana, group_name, group_name_kana,
			description, category, attributes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, uuid.UUID(p.ID), p.Index, uuid.UUID(p.OwnerID), uuid.UUID(p.SubownerID),
		d.Name.Value(), d.NameKana.Value(), d.GroupName.Value(), d.GroupNameKana.Value(), d.Description.Value(),
		p.Category().String(), pq.Array(attributeNames(p.Attributes())), p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindProject(ctx context.Context, projectID id.ProjectID) (*models.Project, error) {
	var (
		row        detailsRow
		pid        uuid.UUID
		index      int
		owner, sub uuid.UUID
	)
	err := tx.Conn(ctx, s.db).QueryRowContext(ctx, `
		SELECT id, index, owner_id, subowner_id, name, name_kana, group_name, group_name_kana,
			description, category, attributes, created_at
		FROM projects WHERE id = $1
	`, uuid.UUID(projectID)).Scan(&pid, &index, &owner, &sub,
		&row.name, &row.nameKana, &row.groupName, &row.groupNameKana, &row.description,
		&row.category, pq.Array(&row.attributes), &row.createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	details, cat, attrs, err := row.decode()
	if err != nil {
		return nil, fmt.Errorf("decode project %s: %w", pid, err)
	}
	return models.NewProject(id.ProjectID(pid), index, id.UserID(owner), id.UserID(sub), details, cat, attrs, row.createdAt.UTC())
}

func (s *PostgresStore) CreatePendingProject(ctx context.Context, p *models.PendingProject) error {
	d := p.Details
	_, err := tx.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO pending_projects (id, owner_id, name, name_kana, group_name, group_name_kana,
			description, category, attributes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, uuid.UUID(p.ID), uuid.UUID(p.OwnerID),
		d.Name.Value(), d.NameKana.Value(), d.GroupName.Value(), d.GroupNameKana.Value(), d.Description.Value(),
		p.Category().String(), pq.Array(attributeNames(p.Attributes())), p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create pending project: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindPendingProject(ctx context.Context, pendingID id.PendingProjectID) (*models.PendingProject, error) {
	var (
		row        detailsRow
		pid, owner uuid.UUID
	)
	err := tx.Conn(ctx, s.db).QueryRowContext(ctx, `
		SELECT id, owner_id, name, name_kana, group_name, group_name_kana,
			description, category, attributes, created_at
		FROM pending_projects WHERE id = $1
	`, uuid.UUID(pendingID)).Scan(&pid, &owner,
		&row.name, &row.nameKana, &row.groupName, &row.groupNameKana, &row.description,
		&row.category, pq.Array(&row.attributes), &row.createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find pending project: %w", err)
	}
	details, cat, attrs, err := row.decode()
	if err != nil {
		return nil, fmt.Errorf("decode pending project %s: %w", pid, err)
	}
	return models.NewPendingProject(id.PendingProjectID(pid), id.UserID(owner), details, cat, attrs, row.createdAt.UTC())
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
