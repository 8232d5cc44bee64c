package ports

import (
	"context"

	"github.com/qalab/employee-directory/internal/core/domain"
)

// EmployeeRepository persists the whole employee collection as one unit.
// Every mutation is a LoadAll, an in-memory change and a SaveAll.
type EmployeeRepository interface {
	// LoadAll returns every stored employee in stored order. A store that has
	// never been written returns an empty slice.
	LoadAll(ctx context.Context) ([]domain.Employee, error)
	// SaveAll replaces the stored collection with employees.
	SaveAll(ctx context.Context, employees []domain.Employee) error
	// Bootstrap writes seed when the store does not exist yet and reports
	// whether it did so.
	Bootstrap(ctx context.Context, seed []domain.Employee) (bool, error)
}
