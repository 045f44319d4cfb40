package goals

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

// =========== Goal Repository ===========

type goalRepoPG struct{ pool *pgxpool.Pool }

func NewGoalRepoPG(pool *pgxpool.Pool) GoalRepository {
	return &goalRepoPG{pool: pool}
}

const goalCols = `id, title, status, progress, owner_id, due_date, created_at, updated_at`

func scanGoal(row pgx.Row) (*Goal, error) {
	var g Goal
	err := row.Scan(&g.ID, &g.Title, &g.Status, &g.Progress, &g.OwnerID, &g.DueDate, &g.CreatedAt, &g.UpdatedAt)
	return &g, err
}

func (r *goalRepoPG) Create(ctx context.Context, g *Goal) error {
	g.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO goal (id, title, status, progress, owner_id, due_date)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		g.ID, g.Title, g.Status, g.Progress, g.OwnerID, g.DueDate)
	return err
}

func (r *goalRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Goal, error) {
	return scanGoal(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+goalCols+` FROM goal WHERE id = $1`, id))
}

func (r *goalRepoPG) Update(ctx context.Context, g *Goal) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE goal SET title=$2, status=$3, progress=$4, owner_id=$5, due_date=$6, updated_at=NOW()
		WHERE id = $1`,
		g.ID, g.Title, g.Status, g.Progress, g.OwnerID, g.DueDate)
	return err
}

func (r *goalRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM goal WHERE id = $1`, id)
	return err
}

func (r *goalRepoPG) List(ctx context.Context, limit, offset int) ([]*Goal, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM goal`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+goalCols+` FROM goal ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, g)
	}
	return items, total, nil
}

// =========== Todo Repository ===========

type todoRepoPG struct{ pool *pgxpool.Pool }

func NewTodoRepoPG(pool *pgxpool.Pool) TodoRepository {
	return &todoRepoPG{pool: pool}
}

const todoCols = `id, title, done, assignee_id, due_date, created_at, updated_at`

func scanTodo(row pgx.Row) (*Todo, error) {
	var t Todo
	err := row.Scan(&t.ID, &t.Title, &t.Done, &t.AssigneeID, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *todoRepoPG) Create(ctx context.Context, t *Todo) error {
	t.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO todo (id, title, done, assignee_id, due_date)
		VALUES ($1,$2,$3,$4,$5)`,
		t.ID, t.Title, t.Done, t.AssigneeID, t.DueDate)
	return err
}

func (r *todoRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Todo, error) {
	return scanTodo(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+todoCols+` FROM todo WHERE id = $1`, id))
}

func (r *todoRepoPG) Update(ctx context.Context, t *Todo) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE todo SET title=$2, done=$3, assignee_id=$4, due_date=$5, updated_at=NOW()
		WHERE id = $1`,
		t.ID, t.Title, t.Done, t.AssigneeID, t.DueDate)
	return err
}

func (r *todoRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM todo WHERE id = $1`, id)
	return err
}

func (r *todoRepoPG) List(ctx context.Context, limit, offset int) ([]*Todo, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM todo`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+todoCols+` FROM todo ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	return items, total, nil
}
