package forms

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/praxis/praxis/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const formCols = `id, name, status, fields, submissions, created_at, updated_at`

func scanForm(row pgx.Row) (*Form, error) {
	var f Form
	err := row.Scan(&f.ID, &f.Name, &f.Status, &f.Fields, &f.Submissions,
		&f.CreatedAt, &f.UpdatedAt)
	return &f, err
}

func (r *repoPG) Create(ctx context.Context, f *Form) error {
	f.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO form (id, name, status, fields)
		VALUES ($1,$2,$3,$4)`,
		f.ID, f.Name, f.Status, f.Fields)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Form, error) {
	return scanForm(r.conn(ctx).QueryRow(ctx, `SELECT `+formCols+` FROM form WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, f *Form) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE form SET name=$2, status=$3, fields=$4, updated_at=NOW()
		WHERE id = $1`,
		f.ID, f.Name, f.Status, f.Fields)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM form WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Form, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM form`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+formCols+` FROM form ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Form
	for rows.Next() {
		f, err := scanForm(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, f)
	}
	return items, total, nil
}
