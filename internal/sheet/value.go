package sheet

import (
	"fmt"
	"strconv"
	"strings"
)

// Blank reports whether a cell value counts as missing. Whitespace-only
// cells and the #N/A error literal both count.
func Blank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "#N/A"
}

// Text returns the trimmed cell value, or nil when the cell is missing.
func Text(s string) *string {
	if Blank(s) {
		return nil
	}
	t := strings.TrimSpace(s)
	return &t
}

// Integer coerces a cell to an int, or nil when the cell is missing.
// Numeric cells sometimes surface as float text ("5.0"); those truncate.
// Anything else is a type error the caller records against the row.
func Integer(s string) (*int, error) {
	if Blank(s) {
		return nil, nil
	}
	t := strings.TrimSpace(s)
	if n, err := strconv.Atoi(t); err == nil {
		return &n, nil
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		n := int(f)
		return &n, nil
	}
	return nil, fmt.Errorf("invalid integer value %q", t)
}

// Flag coerces a cell to a bool. Missing cells default to false, not null.
// Boolean and numeric literals parse normally; any other nonblank text is
// truthy, matching how the legacy catalogs treated the column.
func Flag(s string) bool {
	if Blank(s) {
		return false
	}
	t := strings.ToLower(strings.TrimSpace(s))
	if b, err := strconv.ParseBool(t); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return f != 0
	}
	return true
}
