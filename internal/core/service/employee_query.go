package service

import (
	"slices"
	"strings"

	"github.com/qalab/employee-directory/internal/core/domain"
	"github.com/qalab/employee-directory/internal/core/ports"
)

const (
	defaultSortField = "id"
	defaultPage      = 1
	defaultPageSize  = 10
	maxPageSize      = 50
)

// sortableFields is the allow-list for sortBy; it is also the search set.
var sortableFields = []string{"id", "name", "email", "dept", "role", "status"}

// NormalizeQuery applies defaults and bounds to a raw query.
func NormalizeQuery(q ports.EmployeeQuery) ports.EmployeeQuery {
	q.Search = strings.ToLower(q.Search)
	q.Status = strings.TrimSpace(q.Status)
	if !slices.Contains(sortableFields, q.SortBy) {
		q.SortBy = defaultSortField
	}
	if q.Page < 1 {
		q.Page = defaultPage
	}
	switch {
	case q.PageSize < 1:
		q.PageSize = 1
	case q.PageSize > maxPageSize:
		q.PageSize = maxPageSize
	}
	return q
}

// QueryEmployees filters, sorts and paginates all without modifying it.
func QueryEmployees(all []domain.Employee, q ports.EmployeeQuery) *ports.EmployeePage {
	q = NormalizeQuery(q)

	rows := make([]domain.Employee, 0, len(all))
	for _, e := range all {
		if q.Search != "" && !matchesSearch(e, q.Search) {
			continue
		}
		if q.Status != "" && string(e.Status) != q.Status {
			continue
		}
		rows = append(rows, e)
	}

	slices.SortStableFunc(rows, func(a, b domain.Employee) int {
		c := strings.Compare(strings.ToLower(a.Field(q.SortBy)), strings.ToLower(b.Field(q.SortBy)))
		if q.SortDesc {
			return -c
		}
		return c
	})

	total := len(rows)
	start := total
	if q.Page-1 <= total/q.PageSize {
		start = min((q.Page-1)*q.PageSize, total)
	}
	end := min(start+q.PageSize, total)

	return &ports.EmployeePage{
		Rows:       rows[start:end],
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: max(1, (total+q.PageSize-1)/q.PageSize),
	}
}

func matchesSearch(e domain.Employee, needle string) bool {
	for _, f := range sortableFields {
		if strings.Contains(strings.ToLower(e.Field(f)), needle) {
			return true
		}
	}
	return false
}
