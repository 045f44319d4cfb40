package seo

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

type keywordRepoPG struct{ pool *pgxpool.Pool }

func NewKeywordRepoPG(pool *pgxpool.Pool) KeywordRepository {
	return &keywordRepoPG{pool: pool}
}

const keywordCols = `id, keyword, position, search_volume, captured_at, created_at`

func (r *keywordRepoPG) Create(ctx context.Context, k *KeywordSnapshot) error {
	k.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO keyword_snapshot (id, keyword, position, search_volume, captured_at)
		VALUES ($1,$2,$3,$4,$5)`,
		k.ID, k.Keyword, k.Position, k.SearchVolume, k.CapturedAt)
	return err
}

func (r *keywordRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM keyword_snapshot WHERE id = $1`, id)
	return err
}

func (r *keywordRepoPG) List(ctx context.Context, limit, offset int) ([]*KeywordSnapshot, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM keyword_snapshot`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `SELECT `+keywordCols+` FROM keyword_snapshot ORDER BY captured_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*KeywordSnapshot
	for rows.Next() {
		var k KeywordSnapshot
		if err := rows.Scan(&k.ID, &k.Keyword, &k.Position, &k.SearchVolume, &k.CapturedAt, &k.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &k)
	}
	return items, total, nil
}

type auditRepoPG struct{ pool *pgxpool.Pool }

func NewAuditRepoPG(pool *pgxpool.Pool) AuditRepository {
	return &auditRepoPG{pool: pool}
}

const auditCols = `id, url, score, issues, audited_at, created_at`

func (r *auditRepoPG) Create(ctx context.Context, a *PageAudit) error {
	a.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO page_audit (id, url, score, issues, audited_at)
		VALUES ($1,$2,$3,$4,$5)`,
		a.ID, a.URL, a.Score, a.Issues, a.AuditedAt)
	return err
}

func (r *auditRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM page_audit WHERE id = $1`, id)
	return err
}

func (r *auditRepoPG) List(ctx context.Context, limit, offset int) ([]*PageAudit, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM page_audit`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `SELECT `+auditCols+` FROM page_audit ORDER BY audited_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*PageAudit
	for rows.Next() {
		var a PageAudit
		if err := rows.Scan(&a.ID, &a.URL, &a.Score, &a.Issues, &a.AuditedAt, &a.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &a)
	}
	return items, total, nil
}
