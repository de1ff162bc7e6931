package sheet

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a one-sheet xlsx fixture.
func writeWorkbook(t *testing.T, sheetName string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		t.Fatalf("SetSheetName: %v", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func TestOpenHeaderKeyedAccess(t *testing.T) {
	path := writeWorkbook(t, "PE Problems Catalog", [][]interface{}{
		{"ID", "  Status ", "Week"},
		{"P-1", "Done", 3},
		{"P-2"}, // short row: excelize drops trailing empty cells
	})

	tbl, err := Open(path, "PE Problems Catalog")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if !tbl.HasColumn("Status") {
		t.Error("headers should be trimmed before indexing")
	}

	row := tbl.Row(0)
	if got := row.Value("ID"); got != "P-1" {
		t.Errorf("Value(ID) = %q, want P-1", got)
	}
	if got := row.Value("Status"); got != "Done" {
		t.Errorf("Value(Status) = %q, want Done", got)
	}
	if got := row.Value("Week"); got != "3" {
		t.Errorf("Value(Week) = %q, want 3", got)
	}

	short := tbl.Row(1)
	if got := short.Value("Status"); got != "" {
		t.Errorf("short row Value(Status) = %q, want empty", got)
	}
	if got := short.Value("No Such Column"); got != "" {
		t.Errorf("unknown column Value = %q, want empty", got)
	}
}

func TestOpenMissingSheet(t *testing.T) {
	path := writeWorkbook(t, "PE Problems Catalog", [][]interface{}{{"ID"}})

	if _, err := Open(path, "IB Problems Catalog"); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.xlsx"), "x"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"#N/A", true},
		{" #N/A ", true},
		{"0", false},
		{"false", false},
		{"x", false},
	}
	for _, tt := range tests {
		if got := Blank(tt.input); got != tt.want {
			t.Errorf("Blank(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestText(t *testing.T) {
	if got := Text("  Done  "); got == nil || *got != "Done" {
		t.Errorf("Text(Done) = %v, want Done", got)
	}
	if got := Text("   "); got != nil {
		t.Errorf("Text(blank) = %q, want nil", *got)
	}
}

func TestInteger(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantNil bool
		wantErr bool
	}{
		{input: "5", want: 5},
		{input: " 12 ", want: 12},
		{input: "5.0", want: 5},
		{input: "5.7", want: 5}, // float cells truncate
		{input: "-3", want: -3},
		{input: "", wantNil: true},
		{input: "#N/A", wantNil: true},
		{input: "abc", wantErr: true},
		{input: "12w", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Integer(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Integer(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("Integer(%q): %v", tt.input, err)
			continue
		}
		if tt.wantNil {
			if got != nil {
				t.Errorf("Integer(%q) = %d, want nil", tt.input, *got)
			}
			continue
		}
		if got == nil || *got != tt.want {
			t.Errorf("Integer(%q) = %v, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFlag(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"#N/A", false},
		{"TRUE", true},
		{"true", true},
		{"FALSE", false},
		{"1", true},
		{"0", false},
		{"0.0", false},
		{"yes", true}, // nonblank text is truthy
		{"no", true},  // the legacy rule, verbatim: any text counts
	}
	for _, tt := range tests {
		if got := Flag(tt.input); got != tt.want {
			t.Errorf("Flag(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
