package sqlguard

import (
	"errors"
	"testing"
)

func TestIsSafe(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want bool
	}{
		{"plain select", "SELECT * FROM projects", true},
		{"lowercase select with ilike", "select name from projects where name ilike '%casa%'", true},
		{"drop statement", "DROP TABLE x", false},
		{"lowercase delete", "delete from invoices", false},
		{"keyword mid statement", "SELECT 1; update projects set name = 'x'", false},
		{"punctuation glued to keyword", "SELECT 1;DROP TABLE x", true},
		{"column containing keyword", "SELECT updated_at FROM invoices", true},
		{"tab separated", "SELECT\tid\nFROM\tx\tTRUNCATE", false},
		{"empty", "", true},
		{"comment keyword", "COMMENT ON TABLE x IS 'y'", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSafe(tt.sql); got != tt.want {
				t.Errorf("IsSafe(%q) = %v, want %v", tt.sql, got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	if err := Check("SELECT 1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Check("GRANT ALL ON x TO y"); !errors.Is(err, ErrUnsafeQuery) {
		t.Errorf("expected ErrUnsafeQuery, got %v", err)
	}
}

func TestKeywordsComplete(t *testing.T) {
	if got := len(Keywords()); got != 12 {
		t.Errorf("expected 12 keywords, got %d", got)
	}
}
