package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRubric(t *testing.T) {
	t.Setenv("RUBRIC_FILE", "")
	if err := InitRubric(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	criteria := RubricCriteria()
	if len(criteria) != 4 {
		t.Fatalf("expected 4 default criteria, got %d", len(criteria))
	}

	c, ok := CriterionByID("rc2")
	if !ok {
		t.Fatalf("rc2 missing from default rubric")
	}
	if c.MaxMarks != 15 {
		t.Fatalf("expected rc2 max 15, got %v", c.MaxMarks)
	}

	if _, ok := CriterionByID("rc9"); ok {
		t.Fatalf("rc9 should not exist")
	}
}

func TestInitRubric_LoadsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubric.json")
	content := `[{"id": "q1", "name": "Quality", "max_marks": 10}, {"id": "q2", "name": "Delivery", "max_marks": 5}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write rubric file: %v", err)
	}

	t.Setenv("RUBRIC_FILE", path)
	if err := InitRubric(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("RUBRIC_FILE")
		if err := InitRubric(); err != nil {
			t.Fatalf("restore default rubric: %v", err)
		}
	})

	if len(RubricCriteria()) != 2 {
		t.Fatalf("expected 2 criteria, got %d", len(RubricCriteria()))
	}
	c, ok := CriterionByID("q1")
	if !ok || c.MaxMarks != 10 {
		t.Fatalf("unexpected q1 lookup: %+v ok=%v", c, ok)
	}
}

func TestInitRubric_RejectsBadFiles(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("RUBRIC_FILE", filepath.Join(t.TempDir(), "absent.json"))
		if err := InitRubric(); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})

	t.Run("empty list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rubric.json")
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			t.Fatalf("write rubric file: %v", err)
		}
		t.Setenv("RUBRIC_FILE", path)
		if err := InitRubric(); err == nil {
			t.Fatalf("expected error for empty rubric")
		}
	})

	t.Run("criterion without max", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rubric.json")
		if err := os.WriteFile(path, []byte(`[{"id": "q1", "name": "Quality"}]`), 0o644); err != nil {
			t.Fatalf("write rubric file: %v", err)
		}
		t.Setenv("RUBRIC_FILE", path)
		if err := InitRubric(); err == nil {
			t.Fatalf("expected error for zero max_marks")
		}
	})
}
