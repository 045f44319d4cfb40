package hygiene

import (
	"context"
	"time"

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

const planCols = `id, name, area, interval_days, last_done, assignee_id, created_at, updated_at`

func scanPlan(row pgx.Row) (*HygienePlan, error) {
	var p HygienePlan
	err := row.Scan(&p.ID, &p.Name, &p.Area, &p.IntervalDays, &p.LastDone,
		&p.AssigneeID, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *HygienePlan) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO hygiene_plan (id, name, area, interval_days, last_done, assignee_id)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		p.ID, p.Name, p.Area, p.IntervalDays, p.LastDone, p.AssigneeID)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*HygienePlan, error) {
	return scanPlan(r.conn(ctx).QueryRow(ctx, `SELECT `+planCols+` FROM hygiene_plan WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, p *HygienePlan) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE hygiene_plan SET name=$2, area=$3, interval_days=$4, last_done=$5,
			assignee_id=$6, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Name, p.Area, p.IntervalDays, p.LastDone, p.AssigneeID)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM hygiene_plan WHERE id = $1`, id)
	return err
}

func (r *repoPG) MarkDone(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE hygiene_plan SET last_done=$2, updated_at=NOW() WHERE id = $1`, id, at)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*HygienePlan, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM hygiene_plan`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+planCols+` FROM hygiene_plan ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*HygienePlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}
