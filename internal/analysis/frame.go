package analysis

import (
	"sort"
	"strings"
)

// ColumnKind distinguishes categorical from numeric columns.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindNumber
)

func (k ColumnKind) String() string {
	if k == KindNumber {
		return "numeric"
	}
	return "text"
}

// Column describes one named column of a Frame.
type Column struct {
	Name string
	Kind ColumnKind
}

// Frame is a read-only, row-indexed table with named columns.
//
// Text is only called for KindText columns and Number only for KindNumber
// columns; callers validate names against Columns first.
type Frame interface {
	Len() int
	Columns() []Column
	Text(row int, name string) string
	Number(row int, name string) Value
}

// LookupColumn finds a column by name.
func LookupColumn(frame Frame, name string) (Column, bool) {
	name = strings.TrimSpace(name)
	for _, col := range frame.Columns() {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// ColumnNames lists the frame's column names in declaration order.
func ColumnNames(frame Frame) []string {
	cols := frame.Columns()
	names := make([]string, 0, len(cols))
	for _, col := range cols {
		names = append(names, col.Name)
	}
	return names
}

func requireColumn(frame Frame, name string, kinds ...ColumnKind) (Column, error) {
	col, ok := LookupColumn(frame, name)
	if !ok {
		return Column{}, &UnknownFieldError{Field: name, Available: ColumnNames(frame)}
	}
	if len(kinds) == 0 {
		return col, nil
	}
	for _, kind := range kinds {
		if col.Kind == kind {
			return col, nil
		}
	}
	return Column{}, &UnknownFieldError{Field: name, Found: true, Want: kinds[0], Available: ColumnNames(frame)}
}

// CellString renders any cell as text; numeric cells use Value.String.
func CellString(frame Frame, row int, col Column) string {
	if col.Kind == KindNumber {
		return frame.Number(row, col.Name).String()
	}
	return frame.Text(row, col.Name)
}

// SortOrder returns the row permutation that orders the frame by the named
// column. The sort is stable; undefined numbers always sort last.
func SortOrder(frame Frame, name string, descending bool) ([]int, error) {
	col, err := requireColumn(frame, name)
	if err != nil {
		return nil, err
	}
	order := make([]int, frame.Len())
	for i := range order {
		order[i] = i
	}

	var less func(a, b int) bool
	switch col.Kind {
	case KindNumber:
		less = func(a, b int) bool {
			va, okA := frame.Number(a, col.Name).Float64()
			vb, okB := frame.Number(b, col.Name).Float64()
			switch {
			case !okA || !okB:
				return okA && !okB
			case descending:
				return va > vb
			default:
				return va < vb
			}
		}
	default:
		less = func(a, b int) bool {
			ta := strings.ToLower(frame.Text(a, col.Name))
			tb := strings.ToLower(frame.Text(b, col.Name))
			if descending {
				return ta > tb
			}
			return ta < tb
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return less(order[i], order[j])
	})
	return order, nil
}
