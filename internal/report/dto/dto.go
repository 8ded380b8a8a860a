package dto

import "github.com/fekuna/omnipos-report-service/internal/query"

// ReportFilters carries the optional filters plus a row limit. Limit <= 0 means
// "use the report's default".
type ReportFilters struct {
	query.Filters
	Limit int `json:"limit,omitempty"`
}
