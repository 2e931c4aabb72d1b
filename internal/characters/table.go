package characters

import "swstats/internal/analysis"

// Column names exposed through the analysis.Frame interface.
const (
	ColName      = "name"
	ColSpecies   = "species"
	ColGender    = "gender"
	ColHeight    = "height"
	ColMass      = "mass"
	ColBMI       = "bmi"
	ColFilmCount = "film_count"
)

var columns = []analysis.Column{
	{Name: ColName, Kind: analysis.KindText},
	{Name: ColSpecies, Kind: analysis.KindText},
	{Name: ColGender, Kind: analysis.KindText},
	{Name: ColHeight, Kind: analysis.KindNumber},
	{Name: ColMass, Kind: analysis.KindNumber},
	{Name: ColBMI, Kind: analysis.KindNumber},
	{Name: ColFilmCount, Kind: analysis.KindNumber},
}

// Table is an ordered, read-only sequence of character rows.
type Table struct {
	rows []Row
}

var _ analysis.Frame = Table{}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.rows) }

// Row returns the row at index i.
func (t Table) Row(i int) Row { return t.rows[i] }

// Rows returns a copy of every row in table order.
func (t Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Columns lists the table's columns.
func (t Table) Columns() []analysis.Column {
	out := make([]analysis.Column, len(columns))
	copy(out, columns)
	return out
}

// Text returns a categorical cell.
func (t Table) Text(row int, name string) string {
	r := t.rows[row]
	switch name {
	case ColName:
		return r.Name
	case ColSpecies:
		return r.Species
	case ColGender:
		return r.Gender
	default:
		return ""
	}
}

// Number returns a numeric cell.
func (t Table) Number(row int, name string) analysis.Value {
	r := t.rows[row]
	switch name {
	case ColHeight:
		return r.Height
	case ColMass:
		return r.Mass
	case ColBMI:
		return r.BMI
	case ColFilmCount:
		return analysis.Int(r.FilmCount)
	default:
		return analysis.Undefined
	}
}

// SortedBy returns a reordered copy of the table for display.
func (t Table) SortedBy(column string, descending bool) (Table, error) {
	order, err := analysis.SortOrder(t, column, descending)
	if err != nil {
		return Table{}, err
	}
	rows := make([]Row, 0, len(order))
	for _, idx := range order {
		rows = append(rows, t.rows[idx])
	}
	return Table{rows: rows}, nil
}
