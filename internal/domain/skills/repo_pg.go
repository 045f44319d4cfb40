package skills

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

type skillRepoPG struct{ pool *pgxpool.Pool }

func NewSkillRepoPG(pool *pgxpool.Pool) SkillRepository {
	return &skillRepoPG{pool: pool}
}

const skillCols = `id, name, category, created_at, updated_at`

func scanSkill(row pgx.Row) (*Skill, error) {
	var sk Skill
	err := row.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.CreatedAt, &sk.UpdatedAt)
	return &sk, err
}

func (r *skillRepoPG) Create(ctx context.Context, sk *Skill) error {
	sk.ID = uuid.New()
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO skill (id, name, category) VALUES ($1,$2,$3)`,
		sk.ID, sk.Name, sk.Category)
	return err
}

func (r *skillRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Skill, error) {
	return scanSkill(conn(ctx, r.pool).QueryRow(ctx, `SELECT `+skillCols+` FROM skill WHERE id = $1`, id))
}

func (r *skillRepoPG) Update(ctx context.Context, sk *Skill) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE skill SET name=$2, category=$3, updated_at=NOW() WHERE id = $1`,
		sk.ID, sk.Name, sk.Category)
	return err
}

func (r *skillRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM skill WHERE id = $1`, id)
	return err
}

func (r *skillRepoPG) List(ctx context.Context, limit, offset int) ([]*Skill, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM skill`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `SELECT `+skillCols+` FROM skill ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Skill
	for rows.Next() {
		sk, err := scanSkill(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, sk)
	}
	return items, total, nil
}

type assignmentRepoPG struct{ pool *pgxpool.Pool }

func NewAssignmentRepoPG(pool *pgxpool.Pool) AssignmentRepository {
	return &assignmentRepoPG{pool: pool}
}

const assignCols = `id, skill_id, member_id, level, created_at, updated_at`

func scanAssignment(row pgx.Row) (*SkillAssignment, error) {
	var a SkillAssignment
	err := row.Scan(&a.ID, &a.SkillID, &a.MemberID, &a.Level, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *assignmentRepoPG) Upsert(ctx context.Context, a *SkillAssignment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO skill_assignment (id, skill_id, member_id, level)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (skill_id, member_id)
		DO UPDATE SET level = EXCLUDED.level, updated_at = NOW()`,
		a.ID, a.SkillID, a.MemberID, a.Level)
	return err
}

func (r *assignmentRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM skill_assignment WHERE id = $1`, id)
	return err
}

func (r *assignmentRepoPG) List(ctx context.Context, limit, offset int) ([]*SkillAssignment, int, error) {
	q := conn(ctx, r.pool)
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM skill_assignment`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `SELECT `+assignCols+` FROM skill_assignment ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*SkillAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, nil
}

func (r *assignmentRepoPG) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*SkillAssignment, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT `+assignCols+` FROM skill_assignment WHERE member_id = $1`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*SkillAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, nil
}
