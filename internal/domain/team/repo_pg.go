package team

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

// =========== Member Repository ===========

type memberRepoPG struct{ pool *pgxpool.Pool }

func NewMemberRepoPG(pool *pgxpool.Pool) MemberRepository {
	return &memberRepoPG{pool: pool}
}

const memberCols = `id, name, role, email, employment, fte, hired_at, created_at, updated_at`

func scanMember(row pgx.Row) (*TeamMember, error) {
	var m TeamMember
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Email, &m.Employment, &m.FTE,
		&m.HiredAt, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *memberRepoPG) Create(ctx context.Context, m *TeamMember) error {
	m.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO team_member (id, name, role, email, employment, fte, hired_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		m.ID, m.Name, m.Role, m.Email, m.Employment, m.FTE, m.HiredAt)
	return err
}

func (r *memberRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*TeamMember, error) {
	return scanMember(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+memberCols+` FROM team_member WHERE id = $1`, id))
}

func (r *memberRepoPG) Update(ctx context.Context, m *TeamMember) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE team_member SET name=$2, role=$3, email=$4, employment=$5, fte=$6,
			hired_at=$7, updated_at=NOW()
		WHERE id = $1`,
		m.ID, m.Name, m.Role, m.Email, m.Employment, m.FTE, m.HiredAt)
	return err
}

func (r *memberRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM team_member WHERE id = $1`, id)
	return err
}

func (r *memberRepoPG) List(ctx context.Context, limit, offset int) ([]*TeamMember, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM team_member`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+memberCols+` FROM team_member ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*TeamMember
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, nil
}

// =========== Position Repository ===========

type positionRepoPG struct{ pool *pgxpool.Pool }

func NewPositionRepoPG(pool *pgxpool.Pool) PositionRepository {
	return &positionRepoPG{pool: pool}
}

const positionCols = `id, title, department, holder_id, created_at, updated_at`

func scanPosition(row pgx.Row) (*Position, error) {
	var p Position
	err := row.Scan(&p.ID, &p.Title, &p.Department, &p.HolderID, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *positionRepoPG) Create(ctx context.Context, p *Position) error {
	p.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO team_position (id, title, department, holder_id)
		VALUES ($1,$2,$3,$4)`,
		p.ID, p.Title, p.Department, p.HolderID)
	return err
}

func (r *positionRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Position, error) {
	return scanPosition(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+positionCols+` FROM team_position WHERE id = $1`, id))
}

func (r *positionRepoPG) Update(ctx context.Context, p *Position) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE team_position SET title=$2, department=$3, holder_id=$4, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Title, p.Department, p.HolderID)
	return err
}

func (r *positionRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM team_position WHERE id = $1`, id)
	return err
}

func (r *positionRepoPG) List(ctx context.Context, limit, offset int) ([]*Position, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM team_position`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+positionCols+` FROM team_position ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Position
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}

// =========== Responsibility Repository ===========

type responsibilityRepoPG struct{ pool *pgxpool.Pool }

func NewResponsibilityRepoPG(pool *pgxpool.Pool) ResponsibilityRepository {
	return &responsibilityRepoPG{pool: pool}
}

const responsibilityCols = `id, position_id, description, created_at`

func scanResponsibility(row pgx.Row) (*Responsibility, error) {
	var resp Responsibility
	err := row.Scan(&resp.ID, &resp.PositionID, &resp.Description, &resp.CreatedAt)
	return &resp, err
}

func (r *responsibilityRepoPG) Create(ctx context.Context, resp *Responsibility) error {
	resp.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO responsibility (id, position_id, description)
		VALUES ($1,$2,$3)`,
		resp.ID, resp.PositionID, resp.Description)
	return err
}

func (r *responsibilityRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM responsibility WHERE id = $1`, id)
	return err
}

func (r *responsibilityRepoPG) ListByPosition(ctx context.Context, positionID uuid.UUID) ([]*Responsibility, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+responsibilityCols+` FROM responsibility WHERE position_id = $1 ORDER BY created_at`, positionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Responsibility
	for rows.Next() {
		resp, err := scanResponsibility(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, resp)
	}
	return items, nil
}

func (r *responsibilityRepoPG) List(ctx context.Context, limit, offset int) ([]*Responsibility, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM responsibility`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+responsibilityCols+` FROM responsibility ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Responsibility
	for rows.Next() {
		resp, err := scanResponsibility(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, resp)
	}
	return items, total, nil
}
