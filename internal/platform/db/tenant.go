package db

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	TenantIDKey contextKey = "tenant_id"
	DBConnKey   contextKey = "db_conn"
	TxKey       contextKey = "db_tx"
)

var tenantIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// TenantMiddleware resolves the practice a request operates on and pins the
// request's database connection to that practice's schema. Resolution order:
// JWT claim, X-Practice-ID header, practice_id query parameter, default.
func TenantMiddleware(pool *pgxpool.Pool, defaultTenant string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tenantID := extractTenantID(c, defaultTenant)

			if !tenantIDPattern.MatchString(tenantID) {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid practice identifier")
			}

			ctx := c.Request().Context()
			conn, err := pool.Acquire(ctx)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
			}
			defer conn.Release()

			schema := fmt.Sprintf("practice_%s", tenantID)
			_, err = conn.Exec(ctx, fmt.Sprintf("SET search_path TO %s, shared, public", schema))
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "practice resolution failed")
			}

			ctx = context.WithValue(ctx, TenantIDKey, tenantID)
			ctx = context.WithValue(ctx, DBConnKey, conn)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set("tenant_id", tenantID)
			c.Set("db", conn)

			return next(c)
		}
	}
}

func extractTenantID(c echo.Context, defaultTenant string) string {
	// 1. Check JWT claim (set by auth middleware)
	if tid, ok := c.Get("jwt_tenant_id").(string); ok && tid != "" {
		return tid
	}

	// 2. Check X-Practice-ID header
	if tid := c.Request().Header.Get("X-Practice-ID"); tid != "" {
		return tid
	}

	// 3. Check query parameter
	if tid := c.QueryParam("practice_id"); tid != "" {
		return tid
	}

	return defaultTenant
}

// ConnFromContext retrieves the tenant-scoped database connection from context.
func ConnFromContext(ctx context.Context) *pgxpool.Conn {
	conn, _ := ctx.Value(DBConnKey).(*pgxpool.Conn)
	return conn
}

// TxFromContext retrieves an in-flight transaction from context, if any.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(TxKey).(pgx.Tx)
	return tx
}

// TenantFromContext retrieves the practice ID from context.
func TenantFromContext(ctx context.Context) string {
	tid, _ := ctx.Value(TenantIDKey).(string)
	return tid
}

// AcquireTenant checks out a dedicated connection from the pool and
// applies the search_path of the practice recorded in ctx. The returned
// context carries that connection in place of the request's pinned one;
// release must be called when the caller is done with it. Needed
// wherever a request issues queries concurrently, since a single pinned
// connection serves one query at a time.
func AcquireTenant(ctx context.Context, pool *pgxpool.Pool) (context.Context, func(), error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("acquire connection: %w", err)
	}

	if tenantID := TenantFromContext(ctx); tenantID != "" {
		if !tenantIDPattern.MatchString(tenantID) {
			conn.Release()
			return nil, nil, fmt.Errorf("invalid practice identifier: %s", tenantID)
		}
		schema := fmt.Sprintf("practice_%s", tenantID)
		if _, err := conn.Exec(ctx, fmt.Sprintf("SET search_path TO %s, shared, public", schema)); err != nil {
			conn.Release()
			return nil, nil, fmt.Errorf("set search_path for %s: %w", schema, err)
		}
	}

	return context.WithValue(ctx, DBConnKey, conn), conn.Release, nil
}

// TenantConns adapts the pool to per-caller tenant-scoped connections.
type TenantConns struct{ pool *pgxpool.Pool }

func NewTenantConns(pool *pgxpool.Pool) *TenantConns {
	return &TenantConns{pool: pool}
}

// Scoped leases a fresh connection for the practice recorded in ctx.
func (t *TenantConns) Scoped(ctx context.Context) (context.Context, func(), error) {
	return AcquireTenant(ctx, t.pool)
}

// CreateTenantSchema creates a new schema for a practice and runs all
// migrations against it. If migrationsDir is empty, migrations are skipped.
func CreateTenantSchema(ctx context.Context, pool *pgxpool.Pool, tenantID string, migrationsDir string) error {
	if !tenantIDPattern.MatchString(tenantID) {
		return fmt.Errorf("invalid practice identifier: %s", tenantID)
	}

	schema := fmt.Sprintf("practice_%s", tenantID)

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema))
	if err != nil {
		return fmt.Errorf("create schema %s: %w", schema, err)
	}

	if migrationsDir != "" {
		migrator := NewMigrator(pool, migrationsDir)
		if _, err := migrator.Up(ctx, schema); err != nil {
			return fmt.Errorf("run migrations for %s: %w", schema, err)
		}
	}

	return nil
}
