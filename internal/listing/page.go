package listing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Kind int

const (
	KindText Kind = iota
	KindCurrency
	KindEnum
	KindDate
)

// Column describes one displayed column: a stable key, a human label for
// headers and exports, and a tagged kind that picks the formatting. Value
// extracts the cell from a row.
type Column[T any] struct {
	Key   string
	Label string
	Kind  Kind
	Value func(T) any
}

// Format renders a cell for display, search matching and export.
func (c Column[T]) Format(row T) string {
	v := c.Value(row)
	switch c.Kind {
	case KindCurrency:
		switch n := v.(type) {
		case float64:
			return strconv.FormatFloat(n, 'f', 2, 64)
		default:
			return fmt.Sprint(v)
		}
	case KindDate:
		switch d := v.(type) {
		case time.Time:
			return d.Format("02/01/2006")
		default:
			return fmt.Sprint(v)
		}
	case KindText, KindEnum:
		return fmt.Sprint(v)
	default:
		return fmt.Sprint(v)
	}
}

type PageResult[T any] struct {
	Rows       []T `json:"rows"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalRows  int `json:"total_rows"`
	TotalPages int `json:"total_pages"`
}

const DefaultPageSize = 10

// SearchPage filters rows by a case-insensitive substring match against
// every column's formatted value, then returns the requested page. The
// page number clamps into [1, max(1, totalPages)] instead of erroring.
// The input slice is never mutated; the result holds a fresh slice.
func SearchPage[T any](rows []T, cols []Column[T], query string, page, pageSize int) PageResult[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := rows
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filtered = make([]T, 0, len(rows))
		for _, row := range rows {
			for _, col := range cols {
				if strings.Contains(strings.ToLower(col.Format(row)), q) {
					filtered = append(filtered, row)
					break
				}
			}
		}
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	// an empty filtered set still has one (empty) page to clamp into
	maxPage := totalPages
	if maxPage < 1 {
		maxPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	out := make([]T, end-start)
	copy(out, filtered[start:end])

	return PageResult[T]{
		Rows:       out,
		Page:       page,
		PageSize:   pageSize,
		TotalRows:  len(filtered),
		TotalPages: totalPages,
	}
}
