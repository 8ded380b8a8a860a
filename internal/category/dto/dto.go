package dto

// Filters lists the values a report can be filtered on.
type Filters struct {
	Categories []string `json:"categories"`
}
