package ports

import (
	"context"

	"github.com/qalab/employee-directory/internal/core/domain"
)

// EmployeeQuery carries the list endpoint parameters after defaulting.
type EmployeeQuery struct {
	Search   string // case-insensitive substring over every field
	Status   string // exact match, empty = any
	SortBy   string // one of the sortable fields, anything else falls back to "id"
	SortDesc bool
	Page     int // 1-based
	PageSize int // 1..50
}

// EmployeePage is one page of a query result.
type EmployeePage struct {
	Rows       []domain.Employee `json:"rows"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

// EmployeeInput is a validated, trimmed employee write.
type EmployeeInput struct {
	ID     string
	Name   string
	Email  string
	Dept   string
	Role   string
	Status domain.EmployeeStatus
}

// BulkAction names a bulk operation.
type BulkAction string

const (
	BulkDelete BulkAction = "delete"
	BulkStatus BulkAction = "status"
)

// BulkInput carries a bulk request as received.
type BulkInput struct {
	Action BulkAction
	IDs    []string
	Status string
}

// EmployeeService defines use-case operations for the directory.
type EmployeeService interface {
	List(ctx context.Context, query EmployeeQuery) (*EmployeePage, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, input EmployeeInput) error
	Update(ctx context.Context, id string, input EmployeeInput) error
	Delete(ctx context.Context, id string) error
	// Bulk applies action to every employee whose id is listed and returns
	// the number of employees affected.
	Bulk(ctx context.Context, input BulkInput) (int, error)
}
