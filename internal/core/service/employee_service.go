package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/qalab/employee-directory/internal/api/metrics"
	"github.com/qalab/employee-directory/internal/core/domain"
	"github.com/qalab/employee-directory/internal/core/ports"
)

// EmployeeService implements the directory use cases on top of a
// whole-collection repository.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger

	// mu is held across every load-modify-save cycle so two mutations never
	// work from the same snapshot.
	mu sync.Mutex
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

func (s *EmployeeService) List(ctx context.Context, query ports.EmployeeQuery) (*ports.EmployeePage, error) {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return QueryEmployees(all, query), nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	idx := indexOf(all, id)
	if idx < 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	e := all[idx]
	return &e, nil
}

// Create appends a new employee. The id and the email (case-insensitive) must
// not be used by any stored employee.
func (s *EmployeeService) Create(ctx context.Context, input ports.EmployeeInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	if err := checkUnique(all, input, -1); err != nil {
		return err
	}

	all = append(all, toEmployee(input))
	if err := s.repo.SaveAll(ctx, all); err != nil {
		return fmt.Errorf("create employee: %w", err)
	}

	metrics.EmployeeMutationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("employee_id", input.ID).Msg("employee created")
	return nil
}

// Update replaces the employee stored under id. The new values may change the
// id itself; uniqueness is checked against every other employee.
func (s *EmployeeService) Update(ctx context.Context, id string, input ports.EmployeeInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	idx := indexOf(all, id)
	if idx < 0 {
		return domain.ErrEmployeeNotFound
	}
	if err := checkUnique(all, input, idx); err != nil {
		return err
	}

	all[idx] = toEmployee(input)
	if err := s.repo.SaveAll(ctx, all); err != nil {
		return fmt.Errorf("update employee: %w", err)
	}

	metrics.EmployeeMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Str("employee_id", id).Str("new_id", input.ID).Msg("employee updated")
	return nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	remaining := slices.DeleteFunc(slices.Clone(all), func(e domain.Employee) bool { return e.ID == id })
	if len(remaining) == len(all) {
		return domain.ErrEmployeeNotFound
	}
	if err := s.repo.SaveAll(ctx, remaining); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}

	metrics.EmployeeMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}

// Bulk deletes or re-statuses every employee listed in input.IDs. The ids
// check runs before the action is inspected.
func (s *EmployeeService) Bulk(ctx context.Context, input ports.BulkInput) (int, error) {
	if len(input.IDs) == 0 {
		return 0, domain.ErrBulkIDsRequired
	}
	switch input.Action {
	case ports.BulkDelete:
	case ports.BulkStatus:
		if !domain.EmployeeStatus(input.Status).IsValid() {
			return 0, domain.ErrBulkInvalidStatus
		}
	default:
		return 0, domain.ErrBulkInvalidAction
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk %s: %w", input.Action, err)
	}

	updated := 0
	next := all
	if input.Action == ports.BulkDelete {
		next = make([]domain.Employee, 0, len(all))
		for _, e := range all {
			if slices.Contains(input.IDs, e.ID) {
				updated++
				continue
			}
			next = append(next, e)
		}
	} else {
		for i := range next {
			if slices.Contains(input.IDs, next[i].ID) {
				next[i].Status = domain.EmployeeStatus(input.Status)
				updated++
			}
		}
	}

	if err := s.repo.SaveAll(ctx, next); err != nil {
		return 0, fmt.Errorf("bulk %s: %w", input.Action, err)
	}

	metrics.EmployeeMutationsTotal.WithLabelValues("bulk_" + string(input.Action)).Add(float64(updated))
	s.logger.Info().
		Str("action", string(input.Action)).
		Int("requested", len(input.IDs)).
		Int("updated", updated).
		Msg("bulk employee operation")
	return updated, nil
}

func indexOf(all []domain.Employee, id string) int {
	return slices.IndexFunc(all, func(e domain.Employee) bool { return e.ID == id })
}

// checkUnique reports a conflict if another employee (skip is the index being
// replaced, -1 for none) already uses the id or the email.
func checkUnique(all []domain.Employee, input ports.EmployeeInput, skip int) error {
	for i, e := range all {
		if i != skip && e.ID == input.ID {
			return domain.ErrDuplicateID
		}
	}
	for i, e := range all {
		if i != skip && strings.EqualFold(e.Email, input.Email) {
			return domain.ErrDuplicateEmail
		}
	}
	return nil
}

func toEmployee(in ports.EmployeeInput) domain.Employee {
	return domain.Employee{
		ID:     in.ID,
		Name:   in.Name,
		Email:  in.Email,
		Dept:   in.Dept,
		Role:   in.Role,
		Status: in.Status,
	}
}
