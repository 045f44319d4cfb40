package events

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

type changeEventRepoPG struct{ pool *pgxpool.Pool }

func NewChangeEventRepoPG(pool *pgxpool.Pool) ChangeEventRepository {
	return &changeEventRepoPG{pool: pool}
}

func (r *changeEventRepoPG) Append(ctx context.Context, e *ChangeEvent) error {
	e.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO change_event (id, actor_id, entity, action, detail)
		VALUES ($1,$2,$3,$4,$5)`,
		e.ID, e.ActorID, e.Entity, e.Action, e.Detail)
	return err
}

func (r *changeEventRepoPG) List(ctx context.Context, limit, offset int) ([]*ChangeEvent, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM change_event`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `
		SELECT id, actor_id, entity, action, detail, created_at
		FROM change_event ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*ChangeEvent
	for rows.Next() {
		var e ChangeEvent
		if err := rows.Scan(&e.ID, &e.ActorID, &e.Entity, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &e)
	}
	return items, total, nil
}

type insightHistoryRepoPG struct{ pool *pgxpool.Pool }

func NewInsightHistoryRepoPG(pool *pgxpool.Pool) InsightHistoryRepository {
	return &insightHistoryRepoPG{pool: pool}
}

func (r *insightHistoryRepoPG) Insert(ctx context.Context, h *InsightHistory) error {
	h.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO insight_history (id, practice_id, user_id, report_type, summary, report, metadata)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		h.ID, h.PracticeID, h.UserID, h.ReportType, h.Summary, h.Report, h.Metadata)
	return err
}

func (r *insightHistoryRepoPG) List(ctx context.Context, limit, offset int) ([]*InsightHistory, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM insight_history`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `
		SELECT id, practice_id, user_id, report_type, summary, report, metadata, created_at
		FROM insight_history ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*InsightHistory
	for rows.Next() {
		var h InsightHistory
		if err := rows.Scan(&h.ID, &h.PracticeID, &h.UserID, &h.ReportType, &h.Summary,
			&h.Report, &h.Metadata, &h.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &h)
	}
	return items, total, nil
}
