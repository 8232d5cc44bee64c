package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/qalab/employee-directory/internal/core/domain"
)

func newRepo(t *testing.T) *EmployeeRepository {
	t.Helper()
	return NewEmployeeRepository(filepath.Join(t.TempDir(), "data", "employees.json"))
}

func TestLoadAll_MissingDocumentIsEmpty(t *testing.T) {
	repo := newRepo(t)

	got, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestSaveAll_RoundTripPreservesOrder(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	rows := []domain.Employee{
		{ID: "Z9", Name: "Zed", Email: "z@x.io", Dept: "Ops", Role: "Lead", Status: domain.StatusOnLeave},
		{ID: "A1", Name: "Amy", Email: "a@x.io", Dept: "Ops", Role: "Tech", Status: domain.StatusActive},
	}

	if err := repo.SaveAll(ctx, rows); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0] != rows[0] || got[1] != rows[1] {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSaveAll_WritesPrettyJSON(t *testing.T) {
	repo := newRepo(t)

	if err := repo.SaveAll(context.Background(), domain.SeedEmployees()); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(repo.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		t.Fatalf("document is not json: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), raw) {
		t.Fatalf("document is not 2-space indented:\n%s", raw)
	}
	if !bytes.Contains(raw, []byte(`"status": "Inactive"`)) {
		t.Fatalf("expected employee fields in document:\n%s", raw)
	}
}

func TestSaveAll_EmptyCollectionIsArray(t *testing.T) {
	repo := newRepo(t)

	if err := repo.SaveAll(context.Background(), nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _ := os.ReadFile(repo.Path())
	if string(raw) != "[]" {
		t.Fatalf("expected [], got %q", raw)
	}
}

func TestSaveAll_LeavesNoTempFiles(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.SaveAll(ctx, domain.SeedEmployees()); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	entries, err := os.ReadDir(filepath.Dir(repo.Path()))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the document, found %d entries", len(entries))
	}
}

func TestBootstrap_SeedsOnce(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	seeded, err := repo.Bootstrap(ctx, domain.SeedEmployees())
	if err != nil || !seeded {
		t.Fatalf("expected first bootstrap to seed, got %v %v", seeded, err)
	}
	if err := repo.SaveAll(ctx, []domain.Employee{{ID: "only"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	seeded, err = repo.Bootstrap(ctx, domain.SeedEmployees())
	if err != nil || seeded {
		t.Fatalf("expected existing document to be kept, got %v %v", seeded, err)
	}
	got, _ := repo.LoadAll(ctx)
	if len(got) != 1 || got[0].ID != "only" {
		t.Fatalf("bootstrap overwrote existing data: %+v", got)
	}
}

func TestBootstrap_EmptyDocumentIsNotReseeded(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if err := repo.SaveAll(ctx, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	if seeded, err := repo.Bootstrap(ctx, domain.SeedEmployees()); err != nil || seeded {
		t.Fatalf("expected no reseed of an existing empty document, got %v %v", seeded, err)
	}
}

func TestLoadAll_CorruptDocument(t *testing.T) {
	repo := newRepo(t)
	if err := os.MkdirAll(filepath.Dir(repo.Path()), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(repo.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := repo.LoadAll(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestCheck(t *testing.T) {
	repo := newRepo(t)
	if err := repo.Check(context.Background()); err == nil {
		t.Fatalf("expected missing data directory to fail the check")
	}
	if _, err := repo.Bootstrap(context.Background(), nil); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if err := repo.Check(context.Background()); err != nil {
		t.Fatalf("expected healthy store, got %v", err)
	}
}
