package schema

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	//go:embed mysql.sql
	mysqlDDL string

	//go:embed postgres.sql
	postgresDDL string
)

// Tables lists every table the reports read, in creation order.
var Tables = []string{
	"categories",
	"products",
	"product_variants",
	"orders",
	"order_items",
	"return_requests",
	"product_ratings",
	"transactions",
}

// DDL returns the CREATE statements for the given driver.
func DDL(driver string) ([]string, error) {
	switch driver {
	case "mysql":
		return splitStatements(mysqlDDL), nil
	case "postgres":
		return splitStatements(postgresDDL), nil
	default:
		return nil, fmt.Errorf("no schema for driver %q", driver)
	}
}

// Apply creates missing tables. Statements are idempotent (IF NOT EXISTS).
func Apply(ctx context.Context, db *sqlx.DB, driver string) error {
	stmts, err := DDL(driver)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %.40q: %w", stmt, err)
		}
	}
	return nil
}

func splitStatements(ddl string) []string {
	parts := strings.Split(ddl, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			stmts = append(stmts, p)
		}
	}
	return stmts
}
