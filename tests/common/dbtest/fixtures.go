//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is the slice of pgxpool.Pool the fixtures need; transactions
// satisfy it too.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestAdmin(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO admin_users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, 'admin', true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM admin_users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCategory(t *testing.T, db DBLike, title string) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO categories (id, title, image_ratio) VALUES ($1, $2, 'square')",
		categoryID, title)
	require.NoError(t, err)

	return categoryID
}

// CreateTestProduct inserts an active product. unitPrice may be "" for a
// priceless item; fixedQuantity may be nil for free quantity selection.
func CreateTestProduct(t *testing.T, db DBLike, title, unitPrice string, fixedQuantity *int32, categoryID *uuid.UUID) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	var price any
	if unitPrice != "" {
		price = unitPrice
	}

	_, err := db.Exec(ctx, "INSERT INTO products (id, title, description, unit_price, fixed_quantity, is_active, category_id) VALUES ($1, $2, '', $3, $4, true, $5)",
		productID, title, price, fixedQuantity, categoryID)
	require.NoError(t, err)

	return productID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO admin_users (id, email, password_hash, role, is_active)
		VALUES (gen_random_uuid(), 'admin@example.com', $1, 'admin', true)
		ON CONFLICT (email) DO NOTHING;
	`, testPasswordHash)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
