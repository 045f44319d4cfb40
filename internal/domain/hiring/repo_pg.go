package hiring

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

type postingRepoPG struct{ pool *pgxpool.Pool }

func NewPostingRepoPG(pool *pgxpool.Pool) PostingRepository {
	return &postingRepoPG{pool: pool}
}

const postingCols = `id, title, status, employment_type, notes, created_at, updated_at`

func scanPosting(row pgx.Row) (*JobPosting, error) {
	var p JobPosting
	err := row.Scan(&p.ID, &p.Title, &p.Status, &p.Employ, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *postingRepoPG) Create(ctx context.Context, p *JobPosting) error {
	p.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO job_posting (id, title, status, employment_type, notes)
		VALUES ($1,$2,$3,$4,$5)`,
		p.ID, p.Title, p.Status, p.Employ, p.Notes)
	return err
}

func (r *postingRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*JobPosting, error) {
	return scanPosting(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+postingCols+` FROM job_posting WHERE id = $1`, id))
}

func (r *postingRepoPG) Update(ctx context.Context, p *JobPosting) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE job_posting SET title=$2, status=$3, employment_type=$4, notes=$5, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Title, p.Status, p.Employ, p.Notes)
	return err
}

func (r *postingRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM job_posting WHERE id = $1`, id)
	return err
}

func (r *postingRepoPG) List(ctx context.Context, limit, offset int) ([]*JobPosting, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM job_posting`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `SELECT `+postingCols+` FROM job_posting ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*JobPosting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}

type applicantRepoPG struct{ pool *pgxpool.Pool }

func NewApplicantRepoPG(pool *pgxpool.Pool) ApplicantRepository {
	return &applicantRepoPG{pool: pool}
}

const applicantCols = `id, posting_id, name, email, stage, notes, applied_at, created_at, updated_at`

func scanApplicant(row pgx.Row) (*Applicant, error) {
	var a Applicant
	err := row.Scan(&a.ID, &a.PostingID, &a.Name, &a.Email, &a.Stage, &a.Notes,
		&a.AppliedAt, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *applicantRepoPG) Create(ctx context.Context, a *Applicant) error {
	a.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO applicant (id, posting_id, name, email, stage, notes, applied_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.PostingID, a.Name, a.Email, a.Stage, a.Notes, a.AppliedAt)
	return err
}

func (r *applicantRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Applicant, error) {
	return scanApplicant(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+applicantCols+` FROM applicant WHERE id = $1`, id))
}

func (r *applicantRepoPG) Update(ctx context.Context, a *Applicant) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE applicant SET name=$2, email=$3, stage=$4, notes=$5, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.Name, a.Email, a.Stage, a.Notes)
	return err
}

func (r *applicantRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM applicant WHERE id = $1`, id)
	return err
}

func (r *applicantRepoPG) List(ctx context.Context, limit, offset int) ([]*Applicant, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM applicant`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `SELECT `+applicantCols+` FROM applicant ORDER BY applied_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Applicant
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, nil
}

func (r *applicantRepoPG) ListByPosting(ctx context.Context, postingID uuid.UUID) ([]*Applicant, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+applicantCols+` FROM applicant WHERE posting_id = $1 ORDER BY applied_at DESC`, postingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Applicant
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, nil
}
