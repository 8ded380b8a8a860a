package dto

import (
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-report-service/internal/query"
)

// ReportRequest is the wire shape of every report call, read from a JSON body or from
// query parameters.
type ReportRequest struct {
	Category string `json:"category" form:"category"`
	Start    string `json:"start" form:"start"`
	End      string `json:"end" form:"end"`
	Limit    int    `json:"limit" form:"limit" binding:"gte=0"`
}

func (r *ReportRequest) ToFilters() (*ReportFilters, error) {
	start, err := query.ParseDate(r.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := query.ParseDate(r.End)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, fmt.Errorf("start %s is after end %s", start.Format(query.DateLayout), end.Format(query.DateLayout))
	}

	return &ReportFilters{
		Filters: query.Filters{
			Category: strings.TrimSpace(r.Category),
			Start:    start,
			End:      end,
		},
		Limit: r.Limit,
	}, nil
}
