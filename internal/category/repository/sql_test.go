package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func TestSQLRepository_ListNames(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer mockDB.Close()
	repo := NewSQLRepository(sqlx.NewDb(mockDB, "mysql"))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT name FROM categories WHERE name IS NOT NULL ORDER BY name")).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Garden").AddRow("Tools"))

	names, err := repo.ListNames(context.Background())
	if err != nil {
		t.Fatalf("ListNames() error: %v", err)
	}
	if len(names) != 2 || names[0] != "Garden" || names[1] != "Tools" {
		t.Errorf("unexpected names %v", names)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSQLRepository_ListNames_Empty(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer mockDB.Close()
	repo := NewSQLRepository(sqlx.NewDb(mockDB, "mysql"))

	mock.ExpectQuery("FROM categories").WillReturnRows(sqlmock.NewRows([]string{"name"}))

	names, err := repo.ListNames(context.Background())
	if err != nil {
		t.Fatalf("ListNames() error: %v", err)
	}
	if names == nil || len(names) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", names)
	}
}

func TestSQLRepository_ListNames_Error(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer mockDB.Close()
	repo := NewSQLRepository(sqlx.NewDb(mockDB, "mysql"))

	dbErr := errors.New("bad connection")
	mock.ExpectQuery("FROM categories").WillReturnError(dbErr)

	if _, err := repo.ListNames(context.Background()); !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
