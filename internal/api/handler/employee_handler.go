package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/qalab/employee-directory/internal/core/ports"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List returns one page of employees.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     SessionCookie
// @Param        q         query     string  false  "Case-insensitive text over every field"
// @Param        status    query     string  false  "Exact status"  Enums(Active, Inactive, On Leave)
// @Param        sortBy    query     string  false  "Sort field"    Enums(id, name, email, dept, role, status)
// @Param        sortDir   query     string  false  "Sort direction" Enums(asc, desc)
// @Param        page      query     int     false  "1-based page"  default(1)
// @Param        pageSize  query     int     false  "Rows per page, 1..50" default(10)
// @Success      200       {object}  ports.EmployeePage
// @Failure      401       {object}  errorResponse
// @Failure      503       {object}  errorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	query := ports.EmployeeQuery{
		Search:   c.QueryParam("q"),
		Status:   c.QueryParam("status"),
		SortBy:   c.QueryParam("sortBy"),
		SortDesc: strings.EqualFold(c.QueryParam("sortDir"), "desc"),
		Page:     intParam(c, "page", defaultPage),
		PageSize: intParam(c, "pageSize", defaultPageSize),
	}

	page, err := h.service.List(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get returns a single employee.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      string  true  "Employee ID (e.g. E1001)"
// @Success      200  {object}  domain.Employee
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Create adds an employee.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      employeeRequest  true  "Employee"
// @Success      201   {object}  okResponse
// @Failure      400   {object}  validationErrorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	req, err := bindEmployee(c)
	if err != nil {
		return err
	}

	if err := h.service.Create(c.Request().Context(), req.toInput()); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, okResponse{OK: true})
}

// Update replaces an employee. The id in the body may rename the record.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        id    path      string           true  "Current employee ID"
// @Param        body  body      employeeRequest  true  "Employee"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  validationErrorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	req, err := bindEmployee(c)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// Delete removes an employee.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     SessionCookie
// @Param        id   path      string  true  "Employee ID"
// @Success      200  {object}  okResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// Bulk deletes employees or sets their status.
//
// @Summary      Bulk employee action
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      bulkRequest  true  "action is delete or status; status is required for the status action"
// @Success      200   {object}  bulkResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /api/employees/bulk [post]
func (h *EmployeeHandler) Bulk(c echo.Context) error {
	var req bulkRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload
	}

	updated, err := h.service.Bulk(c.Request().Context(), ports.BulkInput{
		Action: ports.BulkAction(req.Action),
		IDs:    req.IDs,
		Status: req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bulkResponse{OK: true, Updated: updated})
}

func bindEmployee(c echo.Context) (employeeRequest, error) {
	var req employeeRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return req, errInvalidPayload
	}
	req.trim()
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

// intParam parses a query parameter, returning def when it is absent or not
// an integer. Range checks belong to the query engine.
func intParam(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}
