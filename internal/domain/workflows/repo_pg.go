package workflows

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

func conn(ctx context.Context, pool *pgxpool.Pool) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return pool
}

type workflowRepoPG struct{ pool *pgxpool.Pool }

func NewWorkflowRepoPG(pool *pgxpool.Pool) WorkflowRepository {
	return &workflowRepoPG{pool: pool}
}

const workflowCols = `id, name, status, steps_total, steps_done, template_id, created_at, updated_at`

func scanWorkflow(row pgx.Row) (*Workflow, error) {
	var w Workflow
	err := row.Scan(&w.ID, &w.Name, &w.Status, &w.StepsTotal, &w.StepsDone, &w.TemplateID, &w.CreatedAt, &w.UpdatedAt)
	return &w, err
}

func (r *workflowRepoPG) Create(ctx context.Context, w *Workflow) error {
	w.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO workflow (id, name, status, steps_total, steps_done, template_id)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		w.ID, w.Name, w.Status, w.StepsTotal, w.StepsDone, w.TemplateID)
	return err
}

func (r *workflowRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Workflow, error) {
	return scanWorkflow(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+workflowCols+` FROM workflow WHERE id = $1`, id))
}

func (r *workflowRepoPG) Update(ctx context.Context, w *Workflow) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE workflow SET name=$2, status=$3, steps_total=$4, steps_done=$5, updated_at=NOW()
		WHERE id = $1`,
		w.ID, w.Name, w.Status, w.StepsTotal, w.StepsDone)
	return err
}

func (r *workflowRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM workflow WHERE id = $1`, id)
	return err
}

func (r *workflowRepoPG) List(ctx context.Context, limit, offset int) ([]*Workflow, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM workflow`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+workflowCols+` FROM workflow ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Workflow
	for rows.Next() {
		w, err := scanWorkflow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, w)
	}
	return items, total, nil
}

// =========== Template Repository ===========

// Templates live in the shared schema, visible to all practices.
type templateRepoPG struct{ pool *pgxpool.Pool }

func NewTemplateRepoPG(pool *pgxpool.Pool) TemplateRepository {
	return &templateRepoPG{pool: pool}
}

const templateCols = `id, name, category, description, steps, created_at`

func scanTemplate(row pgx.Row) (*Template, error) {
	var t Template
	err := row.Scan(&t.ID, &t.Name, &t.Category, &t.Description, &t.Steps, &t.CreatedAt)
	return &t, err
}

func (r *templateRepoPG) List(ctx context.Context, limit, offset int) ([]*Template, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM shared.workflow_template`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+templateCols+` FROM shared.workflow_template ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	return items, total, nil
}

func (r *templateRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Template, error) {
	return scanTemplate(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+templateCols+` FROM shared.workflow_template WHERE id = $1`, id))
}
