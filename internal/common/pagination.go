package common

import (
	"net/http"
	"strconv"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type PageQuery struct {
	Page  int
	Limit int
}

func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePageQuery reads page (>= 1) and limit (1..100) from the query string.
func ParsePageQuery(r *http.Request) (PageQuery, error) {
	q := PageQuery{Page: defaultPage, Limit: defaultLimit}
	fields := map[string]string{}

	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			fields["page"] = "must be an integer >= 1"
		} else {
			q.Page = n
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			fields["limit"] = "must be an integer between 1 and 100"
		} else {
			q.Limit = n
		}
	}

	if len(fields) > 0 {
		return q, &ValidationError{Fields: fields}
	}
	return q, nil
}

type PageMeta struct {
	TotalItems   int64 `json:"totalItems"`
	ItemCount    int   `json:"itemCount"`
	ItemsPerPage int   `json:"itemsPerPage"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
}

type Paginated[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

func NewPaginated[T any](items []T, total int64, q PageQuery) Paginated[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if q.Limit > 0 {
		totalPages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}
	return Paginated[T]{
		Items: items,
		Meta: PageMeta{
			TotalItems:   total,
			ItemCount:    len(items),
			ItemsPerPage: q.Limit,
			TotalPages:   totalPages,
			CurrentPage:  q.Page,
		},
	}
}

// ParseID reads a positive numeric path variable.
func ParseID(raw, field string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, NewValidationError(field, "must be a positive integer")
	}
	return id, nil
}
