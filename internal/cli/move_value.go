package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// moveValue - a ROW,COL flag.
type moveValue struct {
	row, col *int
}

func (that *moveValue) String() string {
	if that.row == nil || that.col == nil {
		return ""
	}

	return fmt.Sprintf("%d,%d", *that.row, *that.col)
}

func (that *moveValue) Set(value string) error {
	rowText, colText, ok := strings.Cut(value, ",")
	if !ok {
		return fmt.Errorf("want ROW,COL, got %q", value)
	}

	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return fmt.Errorf("bad row: %w", err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return fmt.Errorf("bad col: %w", err)
	}

	*that.row, *that.col = row, col

	return nil
}

func (that *moveValue) Type() string {
	return "move"
}
