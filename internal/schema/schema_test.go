package schema

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func TestDDL_CoversEveryTable(t *testing.T) {
	for _, driver := range []string{"mysql", "postgres"} {
		t.Run(driver, func(t *testing.T) {
			stmts, err := DDL(driver)
			if err != nil {
				t.Fatalf("DDL(%q) error: %v", driver, err)
			}
			joined := strings.Join(stmts, "\n")
			for _, table := range Tables {
				if !strings.Contains(joined, "CREATE TABLE IF NOT EXISTS "+table+" (") {
					t.Errorf("%s schema is missing table %s", driver, table)
				}
			}
		})
	}
}

func TestDDL_UnknownDriver(t *testing.T) {
	if _, err := DDL("sqlite"); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestSplitStatements(t *testing.T) {
	got := splitStatements("CREATE TABLE a (id INT);\n\n CREATE TABLE b (id INT);\n")
	if len(got) != 2 || got[0] != "CREATE TABLE a (id INT)" || got[1] != "CREATE TABLE b (id INT)" {
		t.Errorf("unexpected statements: %q", got)
	}
}

func TestApply(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "mysql")

	stmts, _ := DDL("mysql")
	for _, stmt := range stmts {
		mock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	if err := Apply(context.Background(), db, "mysql"); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestApply_StopsOnError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "pgx")

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS categories").WillReturnError(errors.New("permission denied"))

	if err := Apply(context.Background(), db, "postgres"); err == nil {
		t.Fatal("expected Apply() to fail")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
