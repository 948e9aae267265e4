package csvparse

import "testing"

func TestParse_Valid(t *testing.T) {
	raw := `Description,Amount,Date
UBER TRIP 45,250,2025-08-01
ZOMATO ORDER,-480.50,2025-08-02`

	rows, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Parse() returned %d rows, want 2", len(rows))
	}

	if got := rows[0].Description(); got != "UBER TRIP 45" {
		t.Errorf("rows[0].Description() = %q, want %q", got, "UBER TRIP 45")
	}
	if got := rows[0].AmountCent(); got != 25000 {
		t.Errorf("rows[0].AmountCent() = %d, want 25000", got)
	}
	if got := rows[1].AmountCent(); got != -48050 {
		t.Errorf("rows[1].AmountCent() = %d, want -48050", got)
	}
	if got := rows[1][FieldDate]; got != "2025-08-02" {
		t.Errorf("rows[1][date] = %q, want %q", got, "2025-08-02")
	}
}

func TestParse_HeaderAliases(t *testing.T) {
	// lowercase headers must resolve to the same logical fields
	raw := `description,amount,date
unknown merchant,abc,2025-08-03`

	rows, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Parse() returned %d rows, want 1", len(rows))
	}
	if got := rows[0].Description(); got != "unknown merchant" {
		t.Errorf("Description() = %q, want %q", got, "unknown merchant")
	}
	// non-numeric amount coerces to zero, not an error
	if got := rows[0].AmountCent(); got != 0 {
		t.Errorf("AmountCent() = %d, want 0", got)
	}
}

func TestParse_SkipsEmptyLines(t *testing.T) {
	raw := "Description,Amount\nrow one,1\n\nrow two,2\n\n"

	rows, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Parse() returned %d rows, want 2", len(rows))
	}
	// input order preserved
	if rows[0].Description() != "row one" || rows[1].Description() != "row two" {
		t.Errorf("rows out of order: %v", rows)
	}
}

func TestParse_ShortRowDefaulted(t *testing.T) {
	raw := `Description,Amount,Date
only a description`

	rows, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Parse() returned %d rows, want 1", len(rows))
	}
	if got := rows[0].Description(); got != "only a description" {
		t.Errorf("Description() = %q, want %q", got, "only a description")
	}
	if got := rows[0][FieldAmount]; got != "" {
		t.Errorf("missing amount cell = %q, want empty", got)
	}
	if got := rows[0].AmountCent(); got != 0 {
		t.Errorf("AmountCent() = %d, want 0", got)
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	rows, err := Parse("Description,Amount\n")
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if len(rows) != 0 {
		t.Errorf("Parse() returned %d rows, want 0", len(rows))
	}
}

func TestParse_BadPayload(t *testing.T) {
	testCases := []string{
		"",
		"Description,Amount\n\"unterminated,1",
	}

	for _, raw := range testCases {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q) error = nil, want error", raw)
		}
	}
}

func TestRow_AmountCentRounding(t *testing.T) {
	testCases := []struct {
		cell string
		want int64
	}{
		{"250", 25000},
		{"-12.34", -1234},
		{"0.005", 1}, // half away from zero
		{" 42.5 ", 4250},
		{"", 0},
		{"abc", 0},
	}

	for _, tc := range testCases {
		row := Row{FieldAmount: tc.cell}
		if got := row.AmountCent(); got != tc.want {
			t.Errorf("AmountCent(%q) = %d, want %d", tc.cell, got, tc.want)
		}
	}
}
