package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"festa/internal/form/answer"
	"festa/internal/form/dto"
	"festa/internal/form/models"
	id "festa/pkg/domain"
	"festa/pkg/platform/sentinel"
	"festa/pkg/platform/tx"
)

const uniqueViolation = "23505"

// PostgresStore persists forms and answers in PostgreSQL. Items, queries and
// answers are stored as JSONB in their dto shape and rebuilt through the domain
// constructors on read. Calls join a transaction carried by ctx.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateForm(ctx context.Context, form *models.Form) error {
	row, err := newFormRow(form)
	if err != nil {
		return err
	}
	_, err = tx.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO forms (id, author_id, name, description, starts_at, ends_at, items, query, includes, excludes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::uuid[], $10::uuid[], $11, $12)
	`, row.args()...)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create form: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateForm(ctx context.Context, form *models.Form) error {
	row, err := newFormRow(form)
	if err != nil {
		return err
	}
	res, err := tx.Conn(ctx, s.db).ExecContext(ctx, `
		UPDATE forms SET
			author_id = $2, name = $3, description = $4, starts_at = $5, ends_at = $6,
			items = $7, query = $8, includes = $9::uuid[], excludes = $10::uuid[],
			created_at = $11, updated_at = $12
		WHERE id = $1
	`, row.args()...)
	if err != nil {
		return fmt.Errorf("update form: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update form: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

const selectForm = `
	SELECT id, author_id, name, description, starts_at, ends_at, items, query,
		includes::text[], excludes::text[], created_at, updated_at
	FROM forms`

func (s *PostgresStore) FindForm(ctx context.Context, formID id.FormID) (*models.Form, error) {
	row := tx.Conn(ctx, s.db).QueryRowContext(ctx, selectForm+` WHERE id = $1`, uuid.UUID(formID))
	form, err := scanForm(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find form: %w", err)
	}
	return form, nil
}

func (s *PostgresStore) ListForms(ctx context.Context) ([]*models.Form, error) {
	rows, err := tx.Conn(ctx, s.db).QueryContext(ctx, selectForm+` ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	defer rows.Close()

	var out []*models.Form
	for rows.Next() {
		form, err := scanForm(rows)
		if err != nil {
			return nil, fmt.Errorf("list forms: %w", err)
		}
		out = append(out, form)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CreateRegistrationForm(ctx context.Context, form *models.RegistrationForm) error {
	items, err := json.Marshal(dto.FromFormItems(form.Items))
	if err != nil {
		return fmt.Errorf("marshal registration form items: %w", err)
	}
	query, err := json.Marshal(dto.FromQuery(form.Query))
	if err != nil {
		return fmt.Errorf("marshal registration form query: %w", err)
	}
	_, err = tx.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO registration_forms (id, author_id, name, description, items, query, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.UUID(form.ID), uuid.UUID(form.AuthorID), form.Name, form.Description, items, query, form.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create registration form: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindRegistrationForm(ctx context.Context, formID id.RegistrationFormID) (*models.RegistrationForm, error) {
	var (
		doc          dto.RegistrationForm
		items, query []byte
	)
	err := tx.Conn(ctx, s.db).QueryRowContext(ctx, `
		SELECT id, author_id, name, description, items, query, created_at
		FROM registration_forms WHERE id = $1
	`, uuid.UUID(formID)).Scan(
		(*uuid.UUID)(&doc.ID), (*uuid.UUID)(&doc.AuthorID), &doc.Name, &doc.Description, &items, &query, &doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find registration form: %w", err)
	}
	if err := json.Unmarshal(items, &doc.Items); err != nil {
		return nil, fmt.Errorf("unmarshal registration form items: %w", err)
	}
	if err := json.Unmarshal(query, &doc.Query); err != nil {
		return nil, fmt.Errorf("unmarshal registration form query: %w", err)
	}
	return doc.ToModel()
}

func (s *PostgresStore) FindFormAnswer(ctx context.Context, formID id.FormID, projectID id.ProjectID) (*answer.FormAnswer, error) {
	var (
		a     answer.FormAnswer
		items []byte
	)
	err := tx.Conn(ctx, s.db).QueryRowContext(ctx, `
		SELECT id, form_id, project_id, author_id, items, created_at, updated_at
		FROM form_answers WHERE form_id = $1 AND project_id = $2
	`, uuid.UUID(formID), uuid.UUID(projectID)).Scan(
		(*uuid.UUID)(&a.ID), (*uuid.UUID)(&a.FormID), (*uuid.UUID)(&a.ProjectID), (*uuid.UUID)(&a.AuthorID),
		&items, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find form answer: %w", err)
	}
	if a.Items, err = decodeAnswer(items); err != nil {
		return nil, err
	}
	return &a, nil
}

// SaveFormAnswer upserts on (form_id, project_id); the answer items are replaced whole.
func (s *PostgresStore) SaveFormAnswer(ctx context.Context, a *answer.FormAnswer) error {
	items, err := json.Marshal(dto.FromAnswer(a.Items))
	if err != nil {
		return fmt.Errorf("marshal form answer: %w", err)
	}
	_, err = tx.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO form_answers (id, form_id, project_id, author_id, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (form_id, project_id) DO UPDATE SET
			author_id = EXCLUDED.author_id,
			items = EXCLUDED.items,
			updated_at = EXCLUDED.updated_at
	`, uuid.UUID(a.ID), uuid.UUID(a.FormID), uuid.UUID(a.ProjectID), uuid.UUID(a.AuthorID), items, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save form answer: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindRegistrationFormAnswer(ctx context.Context, formID id.RegistrationFormID, pendingID id.PendingProjectID) (*answer.RegistrationFormAnswer, error) {
	var (
		a     answer.RegistrationFormAnswer
		items []byte
	)
	err := tx.Conn(ctx, s.db).QueryRowContext(ctx, `
		SELECT id, registration_form_id, pending_project_id, author_id, items, created_at, updated_at
		FROM registration_form_answers WHERE registration_form_id = $1 AND pending_project_id = $2
	`, uuid.UUID(formID), uuid.UUID(pendingID)).Scan(
		(*uuid.UUID)(&a.ID), (*uuid.UUID)(&a.RegistrationFormID), (*uuid.UUID)(&a.PendingProjectID), (*uuid.UUID)(&a.AuthorID),
		&items, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find registration form answer: %w", err)
	}
	if a.Items, err = decodeAnswer(items); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *PostgresStore) SaveRegistrationFormAnswer(ctx context.Context, a *answer.RegistrationFormAnswer) error {
	items, err := json.Marshal(dto.FromAnswer(a.Items))
	if err != nil {
		return fmt.Errorf("marshal registration form answer: %w", err)
	}
	_, err = tx.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO registration_form_answers (id, registration_form_id, pending_project_id, author_id, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (registration_form_id, pending_project_id) DO UPDATE SET
			author_id = EXCLUDED.author_id,
			items = EXCLUDED.items,
			updated_at = EXCLUDED.updated_at
	`, uuid.UUID(a.ID), uuid.UUID(a.RegistrationFormID), uuid.UUID(a.PendingProjectID), uuid.UUID(a.AuthorID), items, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save registration form answer: %w", err)
	}
	return nil
}

type formRow struct {
	form               *models.Form
	items, query       []byte
	includes, excludes []string
}

func newFormRow(form *models.Form) (formRow, error) {
	doc := dto.FromForm(form)
	items, err := json.Marshal(doc.Items)
	if err != nil {
		return formRow{}, fmt.Errorf("marshal form items: %w", err)
	}
	query, err := json.Marshal(doc.Condition.Query)
	if err != nil {
		return formRow{}, fmt.Errorf("marshal form query: %w", err)
	}
	return formRow{
		form:     form,
		items:    items,
		query:    query,
		includes: idStrings(doc.Condition.Includes),
		excludes: idStrings(doc.Condition.Excludes),
	}, nil
}

func (r formRow) args() []any {
	f := r.form
	return []any{
		uuid.UUID(f.ID), uuid.UUID(f.AuthorID), f.Name, f.Description,
		f.Period.StartsAt, f.Period.EndsAt, r.items, r.query,
		pq.Array(r.includes), pq.Array(r.excludes), f.CreatedAt, f.UpdatedAt,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanForm(sc scanner) (*models.Form, error) {
	var (
		doc                dto.Form
		items, query       []byte
		includes, excludes []string
	)
	err := sc.Scan(
		(*uuid.UUID)(&doc.ID), (*uuid.UUID)(&doc.AuthorID), &doc.Name, &doc.Description,
		&doc.StartsAt, &doc.EndsAt, &items, &query,
		pq.Array(&includes), pq.Array(&excludes), &doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &doc.Items); err != nil {
		return nil, fmt.Errorf("unmarshal form items: %w", err)
	}
	if err := json.Unmarshal(query, &doc.Condition.Query); err != nil {
		return nil, fmt.Errorf("unmarshal form query: %w", err)
	}
	if doc.Condition.Includes, err = parseProjectIDs(includes); err != nil {
		return nil, err
	}
	if doc.Condition.Excludes, err = parseProjectIDs(excludes); err != nil {
		return nil, err
	}
	doc.StartsAt, doc.EndsAt = doc.StartsAt.UTC(), doc.EndsAt.UTC()
	doc.CreatedAt, doc.UpdatedAt = doc.CreatedAt.UTC(), doc.UpdatedAt.UTC()
	return doc.ToModel()
}

func decodeAnswer(raw []byte) (answer.Answer, error) {
	var doc dto.Answer
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal answer: %w", err)
	}
	return doc.ToModel()
}

func idStrings(ids []id.ProjectID) []string {
	out := make([]string, len(ids))
	for i, pid := range ids {
		out[i] = pid.String()
	}
	return out
}

func parseProjectIDs(raw []string) ([]id.ProjectID, error) {
	out := make([]id.ProjectID, len(raw))
	for i, s := range raw {
		pid, err := id.ParseProjectID(s)
		if err != nil {
			return nil, fmt.Errorf("stored project id %q: %w", s, err)
		}
		out[i] = pid
	}
	return out, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
