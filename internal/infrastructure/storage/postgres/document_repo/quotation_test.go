package document_repo

import (
	"testing"
)

func TestParseOrderBy(t *testing.T) {
	validCols := map[string]bool{
		"name":        true,
		"modified_at": true,
	}

	tests := []struct {
		name    string
		orderBy string
		want    string
		wantErr bool
	}{
		{name: "Default", orderBy: "", want: "modified_at DESC"},
		{name: "Explicit", orderBy: "name DESC", want: "name DESC"},
		{name: "NoDirection", orderBy: "name", want: "name ASC"},
		{name: "UnknownColumn", orderBy: "grand_total DESC", wantErr: true},
		{name: "WhitespaceOnly", orderBy: "   ", wantErr: true},
		{name: "BadDirection", orderBy: "name SIDEWAYS", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOrderBy(tt.orderBy, validCols)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.orderBy)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOrderBy failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}
