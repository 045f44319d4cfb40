package holiday

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

const reqCols = `id, member_id, from_date, to_date, days, status, note, created_at, updated_at`

func scanRequest(row pgx.Row) (*HolidayRequest, error) {
	var hr HolidayRequest
	err := row.Scan(&hr.ID, &hr.MemberID, &hr.From, &hr.To, &hr.Days, &hr.Status,
		&hr.Note, &hr.CreatedAt, &hr.UpdatedAt)
	return &hr, err
}

func (r *repoPG) Create(ctx context.Context, hr *HolidayRequest) error {
	hr.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO holiday_request (id, member_id, from_date, to_date, days, status, note)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		hr.ID, hr.MemberID, hr.From, hr.To, hr.Days, hr.Status, hr.Note)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*HolidayRequest, error) {
	return scanRequest(r.conn(ctx).QueryRow(ctx, `SELECT `+reqCols+` FROM holiday_request WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, hr *HolidayRequest) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE holiday_request SET from_date=$2, to_date=$3, days=$4, status=$5,
			note=$6, updated_at=NOW()
		WHERE id = $1`,
		hr.ID, hr.From, hr.To, hr.Days, hr.Status, hr.Note)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM holiday_request WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*HolidayRequest, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM holiday_request`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+reqCols+` FROM holiday_request ORDER BY from_date DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*HolidayRequest
	for rows.Next() {
		hr, err := scanRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, hr)
	}
	return items, total, nil
}

func (r *repoPG) ApprovedDays(ctx context.Context, memberID uuid.UUID, year int) (int, error) {
	var days int
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COALESCE(SUM(days), 0) FROM holiday_request
		WHERE member_id = $1 AND status = 'approved'
		  AND EXTRACT(YEAR FROM from_date) = $2`,
		memberID, year).Scan(&days)
	return days, err
}
