package category

import "context"

type Repository interface {
	// ListNames returns distinct non-null category names in name order.
	ListNames(ctx context.Context) ([]string, error)
}
