package service

import (
	"fmt"
	"math"
	"testing"

	"github.com/qalab/employee-directory/internal/core/domain"
	"github.com/qalab/employee-directory/internal/core/ports"
)

func makeEmployees(n int) []domain.Employee {
	out := make([]domain.Employee, n)
	for i := range out {
		out[i] = domain.Employee{
			ID:     fmt.Sprintf("E%03d", i+1),
			Name:   fmt.Sprintf("Person %03d", i+1),
			Email:  fmt.Sprintf("p%03d@company.com", i+1),
			Dept:   "Ops",
			Role:   "Operator",
			Status: domain.StatusActive,
		}
	}
	return out
}

func TestQueryEmployees_StatusFilter(t *testing.T) {
	all := domain.SeedEmployees()

	page := QueryEmployees(all, ports.EmployeeQuery{Status: "Active", PageSize: 10})
	if page.Total != 2 {
		t.Fatalf("expected 2 active, got %d", page.Total)
	}
	for _, e := range page.Rows {
		if e.Status != domain.StatusActive {
			t.Fatalf("non-active row returned: %+v", e)
		}
	}
}

func TestQueryEmployees_SecondPage(t *testing.T) {
	all := makeEmployees(25)

	page := QueryEmployees(all, ports.EmployeeQuery{Page: 2, PageSize: 10})
	if page.Total != 25 || page.TotalPages != 3 {
		t.Fatalf("expected total=25 totalPages=3, got %d/%d", page.Total, page.TotalPages)
	}
	if len(page.Rows) != 10 || page.Rows[0].ID != "E011" || page.Rows[9].ID != "E020" {
		t.Fatalf("expected rows E011..E020, got %d rows starting %s", len(page.Rows), page.Rows[0].ID)
	}
}

func TestQueryEmployees_PageBeyondEnd(t *testing.T) {
	page := QueryEmployees(makeEmployees(5), ports.EmployeeQuery{Page: 9, PageSize: 10})
	if page.Rows == nil || len(page.Rows) != 0 {
		t.Fatalf("expected empty non-nil rows, got %#v", page.Rows)
	}
	if page.Page != 9 || page.TotalPages != 1 {
		t.Fatalf("unexpected paging: %+v", page)
	}
}

func TestQueryEmployees_EmptyHasOnePage(t *testing.T) {
	page := QueryEmployees(nil, ports.EmployeeQuery{PageSize: 10})
	if page.Total != 0 || page.TotalPages != 1 || page.Rows == nil {
		t.Fatalf("unexpected page for empty input: %+v", page)
	}
}

func TestQueryEmployees_SearchAnyField(t *testing.T) {
	all := domain.SeedEmployees()

	cases := map[string][]string{
		"ENGINEER": {"E1001"},
		"noah@":    {"E1002"},
		"e100":     {"E1001", "E1002", "E1003"},
		"inactive": {"E1003"},
		"recruit":  {"E1003"},
		"zzz":      {},
	}
	for q, want := range cases {
		page := QueryEmployees(all, ports.EmployeeQuery{Search: q, PageSize: 10})
		if len(page.Rows) != len(want) {
			t.Fatalf("q=%q: expected %d rows, got %d", q, len(want), len(page.Rows))
		}
		for i, id := range want {
			if page.Rows[i].ID != id {
				t.Fatalf("q=%q: row %d expected %s got %s", q, i, id, page.Rows[i].ID)
			}
		}
	}
}

func TestQueryEmployees_SearchAndStatus(t *testing.T) {
	all := domain.SeedEmployees()

	page := QueryEmployees(all, ports.EmployeeQuery{Search: "company", Status: "Inactive", PageSize: 10})
	if page.Total != 1 || page.Rows[0].ID != "E1003" {
		t.Fatalf("expected only E1003, got %+v", page.Rows)
	}
}

func TestQueryEmployees_SortCaseInsensitiveAndStable(t *testing.T) {
	all := []domain.Employee{
		{ID: "3", Name: "bob", Dept: "b"},
		{ID: "1", Name: "Alice", Dept: "a"},
		{ID: "2", Name: "carl", Dept: "b"},
		{ID: "4", Name: "ALICE", Dept: "a"},
	}

	page := QueryEmployees(all, ports.EmployeeQuery{SortBy: "name", PageSize: 10})
	got := []string{page.Rows[0].ID, page.Rows[1].ID, page.Rows[2].ID, page.Rows[3].ID}
	if fmt.Sprint(got) != "[1 4 3 2]" {
		t.Fatalf("unexpected asc order: %v", got)
	}

	page = QueryEmployees(all, ports.EmployeeQuery{SortBy: "dept", SortDesc: true, PageSize: 10})
	got = []string{page.Rows[0].ID, page.Rows[1].ID, page.Rows[2].ID, page.Rows[3].ID}
	if fmt.Sprint(got) != "[3 2 1 4]" {
		t.Fatalf("unexpected desc order with ties: %v", got)
	}
}

func TestQueryEmployees_UnknownSortFallsBackToID(t *testing.T) {
	all := []domain.Employee{{ID: "b"}, {ID: "a"}, {ID: "C"}}

	page := QueryEmployees(all, ports.EmployeeQuery{SortBy: "password", PageSize: 10})
	if page.Rows[0].ID != "a" || page.Rows[1].ID != "b" || page.Rows[2].ID != "C" {
		t.Fatalf("expected id order, got %+v", page.Rows)
	}
}

func TestQueryEmployees_Bounds(t *testing.T) {
	all := makeEmployees(120)

	cases := []struct {
		in          ports.EmployeeQuery
		page, size  int
		rows, pages int
	}{
		{ports.EmployeeQuery{Page: 0, PageSize: 0}, 1, 1, 1, 120},
		{ports.EmployeeQuery{Page: -4, PageSize: 500}, 1, 50, 50, 3},
		{ports.EmployeeQuery{Page: 3, PageSize: 50}, 3, 50, 20, 3},
		{ports.EmployeeQuery{Page: math.MaxInt, PageSize: 50}, math.MaxInt, 50, 0, 3},
	}
	for _, tc := range cases {
		page := QueryEmployees(all, tc.in)
		if page.Page != tc.page || page.PageSize != tc.size || len(page.Rows) != tc.rows || page.TotalPages != tc.pages {
			t.Fatalf("%+v: got page=%d size=%d rows=%d pages=%d", tc.in, page.Page, page.PageSize, len(page.Rows), page.TotalPages)
		}
	}
}

func TestQueryEmployees_DoesNotMutateInput(t *testing.T) {
	all := []domain.Employee{{ID: "b"}, {ID: "a"}}

	_ = QueryEmployees(all, ports.EmployeeQuery{PageSize: 10})
	if all[0].ID != "b" || all[1].ID != "a" {
		t.Fatalf("input reordered: %+v", all)
	}
}
