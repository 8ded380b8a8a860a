package query

import (
	"strings"
	"time"
)

// Key names one optional report filter.
type Key string

const (
	KeyCategory Key = "category"
	KeyStart    Key = "start"
	KeyEnd      Key = "end"
)

// keyOrder is the order clauses and arguments are always rendered in.
var keyOrder = []Key{KeyCategory, KeyStart, KeyEnd}

// Filters are the optional report parameters. An empty Category and nil dates are absent.
type Filters struct {
	Category string     `json:"category,omitempty"`
	Start    *time.Time `json:"start,omitempty"`
	End      *time.Time `json:"end,omitempty"`
}

type clause struct {
	sql string
	arg any
}

// Builder turns Filters into "AND ..." fragments with `?` placeholders and the matching
// bound arguments. Values never reach the SQL text.
type Builder struct {
	clauses map[Key]clause
}

func NewBuilder(f Filters) *Builder {
	b := &Builder{clauses: make(map[Key]clause, len(keyOrder))}
	if f.Category != "" {
		b.clauses[KeyCategory] = clause{sql: "c.name = ?", arg: f.Category}
	}
	if f.Start != nil {
		b.clauses[KeyStart] = clause{sql: "o.delivery_date >= ?", arg: *f.Start}
	}
	if f.End != nil {
		b.clauses[KeyEnd] = clause{sql: "o.delivery_date <= ?", arg: *f.End}
	}
	return b
}

func (b *Builder) Has(k Key) bool {
	_, ok := b.clauses[k]
	return ok
}

// Where renders the present filters among keys (all keys when none are given) as
// " AND x AND y", in fixed category/start/end order, with their arguments.
// It returns "" and no arguments when nothing applies.
func (b *Builder) Where(keys ...Key) (string, []any) {
	if len(keys) == 0 {
		keys = keyOrder
	}

	var sb strings.Builder
	args := make([]any, 0, len(keys))
	for _, k := range keyOrder {
		if !contains(keys, k) {
			continue
		}
		c, ok := b.clauses[k]
		if !ok {
			continue
		}
		sb.WriteString(" AND ")
		sb.WriteString(c.sql)
		args = append(args, c.arg)
	}
	return sb.String(), args
}

// DateKeys selects the delivery-date bounds only.
func DateKeys() []Key {
	return []Key{KeyStart, KeyEnd}
}

func contains(keys []Key, k Key) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}
