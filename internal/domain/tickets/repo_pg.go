package tickets

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

const ticketCols = `id, subject, status, priority, category, reporter_id, resolved_at, created_at, updated_at`

func scanTicket(row pgx.Row) (*Ticket, error) {
	var t Ticket
	err := row.Scan(&t.ID, &t.Subject, &t.Status, &t.Priority, &t.Category,
		&t.ReporterID, &t.ResolvedAt, &t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *repoPG) Create(ctx context.Context, t *Ticket) error {
	t.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO ticket (id, subject, status, priority, category, reporter_id)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		t.ID, t.Subject, t.Status, t.Priority, t.Category, t.ReporterID)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	return scanTicket(r.conn(ctx).QueryRow(ctx, `SELECT `+ticketCols+` FROM ticket WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, t *Ticket) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE ticket SET subject=$2, status=$3, priority=$4, category=$5,
			resolved_at=$6, updated_at=NOW()
		WHERE id = $1`,
		t.ID, t.Subject, t.Status, t.Priority, t.Category, t.ResolvedAt)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM ticket WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Ticket, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM ticket`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+ticketCols+` FROM ticket ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	return items, total, nil
}
