package email

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

type accountRepoPG struct{ pool *pgxpool.Pool }

func NewAccountRepoPG(pool *pgxpool.Pool) AccountRepository {
	return &accountRepoPG{pool: pool}
}

const accountCols = `id, address, display, provider, secret_name, active, created_at, updated_at`

func scanAccount(row pgx.Row) (*EmailAccount, error) {
	var a EmailAccount
	err := row.Scan(&a.ID, &a.Address, &a.Display, &a.Provider, &a.SecretName,
		&a.Active, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *accountRepoPG) Create(ctx context.Context, a *EmailAccount) error {
	a.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO email_account (id, address, display, provider, secret_name, active)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.Address, a.Display, a.Provider, a.SecretName, a.Active)
	return err
}

func (r *accountRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*EmailAccount, error) {
	return scanAccount(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+accountCols+` FROM email_account WHERE id = $1`, id))
}

func (r *accountRepoPG) Update(ctx context.Context, a *EmailAccount) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE email_account SET address=$2, display=$3, provider=$4, secret_name=$5,
			active=$6, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.Address, a.Display, a.Provider, a.SecretName, a.Active)
	return err
}

func (r *accountRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM email_account WHERE id = $1`, id)
	return err
}

func (r *accountRepoPG) List(ctx context.Context, limit, offset int) ([]*EmailAccount, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM email_account`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `SELECT `+accountCols+` FROM email_account ORDER BY address LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*EmailAccount
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, nil
}

type signatureRepoPG struct{ pool *pgxpool.Pool }

func NewSignatureRepoPG(pool *pgxpool.Pool) SignatureRepository {
	return &signatureRepoPG{pool: pool}
}

const sigCols = `id, account_id, name, body_html, is_default, created_at, updated_at`

func scanSignature(row pgx.Row) (*Signature, error) {
	var s Signature
	err := row.Scan(&s.ID, &s.AccountID, &s.Name, &s.BodyHTML, &s.Default,
		&s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func (r *signatureRepoPG) Create(ctx context.Context, s *Signature) error {
	s.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO email_signature (id, account_id, name, body_html, is_default)
		VALUES ($1,$2,$3,$4,$5)`,
		s.ID, s.AccountID, s.Name, s.BodyHTML, s.Default)
	return err
}

func (r *signatureRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Signature, error) {
	return scanSignature(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+sigCols+` FROM email_signature WHERE id = $1`, id))
}

func (r *signatureRepoPG) Update(ctx context.Context, s *Signature) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE email_signature SET account_id=$2, name=$3, body_html=$4, is_default=$5,
			updated_at=NOW()
		WHERE id = $1`,
		s.ID, s.AccountID, s.Name, s.BodyHTML, s.Default)
	return err
}

func (r *signatureRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM email_signature WHERE id = $1`, id)
	return err
}

func (r *signatureRepoPG) List(ctx context.Context, limit, offset int) ([]*Signature, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM email_signature`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `SELECT `+sigCols+` FROM email_signature ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Signature
	for rows.Next() {
		s, err := scanSignature(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, nil
}
