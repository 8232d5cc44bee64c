package handler

import (
	"strings"

	"github.com/qalab/employee-directory/internal/core/domain"
	"github.com/qalab/employee-directory/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// validationErrorResponse is returned with 400 when an employee write fails validation.
type validationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type loginResponse struct {
	OK       bool   `json:"ok"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

type meResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// --- Employees ---

type employeeRequest struct {
	ID     string `json:"id"     validate:"required"`
	Name   string `json:"name"   validate:"required"`
	Email  string `json:"email"  validate:"required,emailshape"`
	Dept   string `json:"dept"   validate:"required"`
	Role   string `json:"role"   validate:"required"`
	Status string `json:"status" validate:"required,oneof='Active' 'Inactive' 'On Leave'"`
}

// trim strips surrounding whitespace from every field. Values are validated
// and stored trimmed.
func (r *employeeRequest) trim() {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Dept = strings.TrimSpace(r.Dept)
	r.Role = strings.TrimSpace(r.Role)
	r.Status = strings.TrimSpace(r.Status)
}

func (r employeeRequest) toInput() ports.EmployeeInput {
	return ports.EmployeeInput{
		ID:     r.ID,
		Name:   r.Name,
		Email:  r.Email,
		Dept:   r.Dept,
		Role:   r.Role,
		Status: domain.EmployeeStatus(r.Status),
	}
}

type bulkRequest struct {
	Action string   `json:"action"`
	IDs    []string `json:"ids"`
	Status string   `json:"status,omitempty"`
}

type bulkResponse struct {
	OK      bool `json:"ok"`
	Updated int  `json:"updated"`
}
