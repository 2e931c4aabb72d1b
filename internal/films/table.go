package films

import (
	"swstats/internal/analysis"
)

// Column names exposed through the analysis.Frame interface.
const (
	ColTitle           = "title"
	ColEpisode         = "episode"
	ColTrilogy         = "trilogy"
	ColDirector        = "director"
	ColReleaseYear     = "release_year"
	ColStarshipCount   = "starship_count"
	ColVehicleCount    = "vehicle_count"
	ColPlanetCount     = "planet_count"
	ColCharacterCount  = "character_count"
	ColShipTotal       = "ship_total"
	ColHyperdriveRatio = "hyperdrive_ratio"
)

var columns = []analysis.Column{
	{Name: ColTitle, Kind: analysis.KindText},
	{Name: ColEpisode, Kind: analysis.KindNumber},
	{Name: ColTrilogy, Kind: analysis.KindText},
	{Name: ColDirector, Kind: analysis.KindText},
	{Name: ColReleaseYear, Kind: analysis.KindNumber},
	{Name: ColStarshipCount, Kind: analysis.KindNumber},
	{Name: ColVehicleCount, Kind: analysis.KindNumber},
	{Name: ColPlanetCount, Kind: analysis.KindNumber},
	{Name: ColCharacterCount, Kind: analysis.KindNumber},
	{Name: ColShipTotal, Kind: analysis.KindNumber},
	{Name: ColHyperdriveRatio, Kind: analysis.KindNumber},
}

// Table is an ordered, read-only sequence of flattened film rows.
type Table struct {
	rows []FlatRow
}

var _ analysis.Frame = Table{}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.rows) }

// Row returns the row at index i.
func (t Table) Row(i int) FlatRow { return t.rows[i] }

// Rows returns a copy of every row in table order.
func (t Table) Rows() []FlatRow {
	out := make([]FlatRow, len(t.rows))
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
	case ColTitle:
		return r.Title
	case ColTrilogy:
		return string(r.Trilogy)
	case ColDirector:
		return r.Director
	default:
		return ""
	}
}

// Number returns a numeric cell.
func (t Table) Number(row int, name string) analysis.Value {
	r := t.rows[row]
	switch name {
	case ColEpisode:
		return analysis.Int(r.Episode)
	case ColReleaseYear:
		return r.ReleaseYear
	case ColStarshipCount:
		return analysis.Int(r.StarshipCount)
	case ColVehicleCount:
		return analysis.Int(r.VehicleCount)
	case ColPlanetCount:
		return analysis.Int(r.PlanetCount)
	case ColCharacterCount:
		return analysis.Int(r.CharacterCount)
	case ColShipTotal:
		return analysis.Int(r.ShipTotal)
	case ColHyperdriveRatio:
		return r.HyperdriveRatio
	default:
		return analysis.Undefined
	}
}

// SortedBy returns a copy of the table ordered by the named column, for
// display. The receiver is left untouched.
func (t Table) SortedBy(column string, descending bool) (Table, error) {
	order, err := analysis.SortOrder(t, column, descending)
	if err != nil {
		return Table{}, err
	}
	rows := make([]FlatRow, 0, len(order))
	for _, idx := range order {
		rows = append(rows, t.rows[idx])
	}
	return Table{rows: rows}, nil
}
