package practice

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

const practiceCols = `id, slug, name, specialty, city, phone, website, founded_year, created_at, updated_at`

func (r *repoPG) scan(row pgx.Row) (*Practice, error) {
	var p Practice
	err := row.Scan(&p.ID, &p.Slug, &p.Name, &p.Specialty, &p.City, &p.Phone,
		&p.Website, &p.FoundedYear, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Practice) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO practice (id, slug, name, specialty, city, phone, website, founded_year)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.Slug, p.Name, p.Specialty, p.City, p.Phone, p.Website, p.FoundedYear)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Practice, error) {
	return r.scan(r.conn(ctx).QueryRow(ctx, `SELECT `+practiceCols+` FROM practice WHERE id = $1`, id))
}

func (r *repoPG) GetBySlug(ctx context.Context, slug string) (*Practice, error) {
	return r.scan(r.conn(ctx).QueryRow(ctx, `SELECT `+practiceCols+` FROM practice WHERE slug = $1`, slug))
}

func (r *repoPG) Update(ctx context.Context, p *Practice) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE practice SET name=$2, specialty=$3, city=$4, phone=$5, website=$6,
			founded_year=$7, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Name, p.Specialty, p.City, p.Phone, p.Website, p.FoundedYear)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM practice WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Practice, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM practice`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+practiceCols+` FROM practice ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Practice
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}

// =========== Settings Repository ===========

type settingsRepoPG struct{ pool *pgxpool.Pool }

func NewSettingsRepoPG(pool *pgxpool.Pool) SettingsRepository {
	return &settingsRepoPG{pool: pool}
}

func (r *settingsRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

func (r *settingsRepoPG) Get(ctx context.Context, practiceID uuid.UUID) (*Settings, error) {
	var s Settings
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT practice_id, ai_enabled, analytics_sharing, locale, updated_at
		FROM practice_settings WHERE practice_id = $1`, practiceID).
		Scan(&s.PracticeID, &s.AIEnabled, &s.AnalyticsSharing, &s.Locale, &s.UpdatedAt)
	if err == pgx.ErrNoRows {
		// A practice without an explicit settings row runs with defaults.
		return DefaultSettings(practiceID), nil
	}
	return &s, err
}

func (r *settingsRepoPG) Upsert(ctx context.Context, s *Settings) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO practice_settings (practice_id, ai_enabled, analytics_sharing, locale)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (practice_id) DO UPDATE
		SET ai_enabled = EXCLUDED.ai_enabled,
			analytics_sharing = EXCLUDED.analytics_sharing,
			locale = EXCLUDED.locale,
			updated_at = NOW()`,
		s.PracticeID, s.AIEnabled, s.AnalyticsSharing, s.Locale)
	return err
}
