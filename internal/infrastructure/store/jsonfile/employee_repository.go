// Package jsonfile stores the employee collection as one pretty-printed JSON
// document on the local file system.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/qalab/employee-directory/internal/core/domain"
)

// EmployeeRepository implements ports.EmployeeRepository on a single file.
type EmployeeRepository struct {
	path string
	mu   sync.RWMutex
}

// NewEmployeeRepository returns a repository backed by path. The file and its
// directory are created on first write.
func NewEmployeeRepository(path string) *EmployeeRepository {
	return &EmployeeRepository{path: path}
}

// Path returns the backing document location.
func (r *EmployeeRepository) Path() string {
	return r.path
}

// LoadAll reads and decodes the whole document. A missing document is an
// empty collection.
func (r *EmployeeRepository) LoadAll(_ context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Employee{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var employees []domain.Employee
	if err := json.Unmarshal(raw, &employees); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return employees, nil
}

// SaveAll encodes employees and replaces the document. The new content is
// written to a temporary file in the same directory and renamed over the old
// one, so readers see either the previous or the new document.
func (r *EmployeeRepository) SaveAll(_ context.Context, employees []domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(employees)
}

// Bootstrap writes seed if the document does not exist.
func (r *EmployeeRepository) Bootstrap(_ context.Context, seed []domain.Employee) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", r.path, err)
	}
	if err := r.write(seed); err != nil {
		return false, err
	}
	return true, nil
}

// Check reports whether the document directory is usable; it backs the
// readiness probe.
func (r *EmployeeRepository) Check(_ context.Context) error {
	info, err := os.Stat(filepath.Dir(r.path))
	if err != nil {
		return fmt.Errorf("data directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data directory: %s is not a directory", filepath.Dir(r.path))
	}
	return nil
}

func (r *EmployeeRepository) Name() string { return "employee_store" }

func (r *EmployeeRepository) write(employees []domain.Employee) error {
	if employees == nil {
		employees = []domain.Employee{}
	}
	payload, err := json.MarshalIndent(employees, "", "  ")
	if err != nil {
		return fmt.Errorf("encode employees: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace %s: %w", r.path, err)
	}
	return nil
}
