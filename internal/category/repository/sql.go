package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) ListNames(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT name FROM categories WHERE name IS NOT NULL ORDER BY name`

	names := []string{}
	if err := r.DB.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("list category names: %w", err)
	}
	return names, nil
}
