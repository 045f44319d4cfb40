package ratings

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

const ratingCols = `id, stars, comment, source, rated_at, created_at, updated_at`

func scanRating(row pgx.Row) (*Rating, error) {
	var rt Rating
	err := row.Scan(&rt.ID, &rt.Stars, &rt.Comment, &rt.Source, &rt.RatedAt,
		&rt.CreatedAt, &rt.UpdatedAt)
	return &rt, err
}

func (r *repoPG) Create(ctx context.Context, rt *Rating) error {
	rt.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO rating (id, stars, comment, source, rated_at)
		VALUES ($1,$2,$3,$4,$5)`,
		rt.ID, rt.Stars, rt.Comment, rt.Source, rt.RatedAt)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Rating, error) {
	return scanRating(r.conn(ctx).QueryRow(ctx, `SELECT `+ratingCols+` FROM rating WHERE id = $1`, id))
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM rating WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Rating, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM rating`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+ratingCols+` FROM rating ORDER BY rated_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Rating
	for rows.Next() {
		rt, err := scanRating(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rt)
	}
	return items, total, nil
}
