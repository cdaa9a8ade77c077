package postgres

import (
	"testing"
	"time"
)

type testEmbedded struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

type testEntity struct {
	testEmbedded
	Name     string `db:"name"`
	Skipped  string `db:"-"`
	Untagged string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[testEntity]()

	want := []string{"id", "created_at", "name"}
	if len(cols) != len(want) {
		t.Fatalf("want %d columns, got %d: %v", len(want), len(cols), cols)
	}
	for i, col := range want {
		if cols[i] != col {
			t.Errorf("column %d: want %q, got %q", i, col, cols[i])
		}
	}
}

func TestStructToMap(t *testing.T) {
	e := testEntity{
		testEmbedded: testEmbedded{ID: "abc"},
		Name:         "paper",
		Skipped:      "nope",
		Untagged:     "nope",
	}

	m := StructToMap(e)

	if m["id"] != "abc" {
		t.Errorf("embedded field not flattened: %v", m)
	}
	if m["name"] != "paper" {
		t.Errorf("tagged field missing: %v", m)
	}
	if _, ok := m["-"]; ok {
		t.Error("dash-tagged field must be skipped")
	}
	if len(m) != 3 {
		t.Errorf("unexpected keys: %v", m)
	}
}

func TestStructToMap_Pointer(t *testing.T) {
	e := &testEntity{Name: "paper"}
	m := StructToMap(e)
	if m["name"] != "paper" {
		t.Errorf("pointer input not dereferenced: %v", m)
	}
}
