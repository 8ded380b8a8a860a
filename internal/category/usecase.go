package category

import (
	"context"

	"github.com/fekuna/omnipos-report-service/internal/category/dto"
)

type UseCase interface {
	GetFilters(ctx context.Context) (*dto.Filters, error)
}
