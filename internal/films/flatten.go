package films

import (
	"strconv"
	"strings"
	"time"

	"swstats/internal/analysis"
)

// RawRecord is one film as returned by the retrieval service.
//
// Required fields are pointers or slices so absence stays visible after JSON
// decoding: a nil list means the field was missing (or null), while an empty
// JSON array decodes to a non-nil empty slice.
type RawRecord struct {
	Title       *string  `json:"title"`
	EpisodeID   *int     `json:"episode_id"`
	Starships   []string `json:"starships"`
	Vehicles    []string `json:"vehicles"`
	Planets     []string `json:"planets"`
	Characters  []string `json:"characters"`
	Species     []string `json:"species"`
	Director    string   `json:"director"`
	Producer    string   `json:"producer"`
	ReleaseDate string   `json:"release_date"`
	URL         string   `json:"url"`
}

// FlatRow is the scalar-only representation of one RawRecord.
type FlatRow struct {
	Title           string         `json:"title" yaml:"title"`
	Episode         int            `json:"episode" yaml:"episode"`
	Trilogy         Trilogy        `json:"trilogy" yaml:"trilogy"`
	Director        string         `json:"director" yaml:"director"`
	ReleaseYear     analysis.Value `json:"release_year" yaml:"release_year"`
	StarshipCount   int            `json:"starship_count" yaml:"starship_count"`
	VehicleCount    int            `json:"vehicle_count" yaml:"vehicle_count"`
	PlanetCount     int            `json:"planet_count" yaml:"planet_count"`
	CharacterCount  int            `json:"character_count" yaml:"character_count"`
	ShipTotal       int            `json:"ship_total" yaml:"ship_total"`
	HyperdriveRatio analysis.Value `json:"hyperdrive_ratio" yaml:"hyperdrive_ratio"`
}

// Field names as they appear in the raw payload.
const (
	fieldTitle     = "title"
	fieldEpisodeID = "episode_id"
	fieldStarships = "starships"
	fieldVehicles  = "vehicles"
	fieldPlanets   = "planets"
)

// Flatten converts records into a Table with one row per record, in order.
// The first malformed record aborts the operation with a
// *analysis.MissingFieldError or *analysis.OutOfRangeError.
func Flatten(records []RawRecord) (Table, error) {
	rows := make([]FlatRow, 0, len(records))
	for i, rec := range records {
		row, err := flattenRecord(i, rec)
		if err != nil {
			return Table{}, err
		}
		rows = append(rows, row)
	}
	return Table{rows: rows}, nil
}

func flattenRecord(index int, rec RawRecord) (FlatRow, error) {
	if err := requireFields(index, rec); err != nil {
		return FlatRow{}, err
	}

	episode := *rec.EpisodeID
	trilogy, ok := TrilogyFor(episode)
	if !ok {
		return FlatRow{}, &analysis.OutOfRangeError{
			Index: index,
			Field: fieldEpisodeID,
			Value: strconv.Itoa(episode),
		}
	}

	starships := len(rec.Starships)
	vehicles := len(rec.Vehicles)
	shipTotal := starships + vehicles

	return FlatRow{
		Title:           strings.TrimSpace(*rec.Title),
		Episode:         episode,
		Trilogy:         trilogy,
		Director:        strings.TrimSpace(rec.Director),
		ReleaseYear:     releaseYear(rec.ReleaseDate),
		StarshipCount:   starships,
		VehicleCount:    vehicles,
		PlanetCount:     len(rec.Planets),
		CharacterCount:  len(rec.Characters),
		ShipTotal:       shipTotal,
		HyperdriveRatio: HyperdriveRatio(starships, vehicles),
	}, nil
}

func requireFields(index int, rec RawRecord) error {
	missing := ""
	switch {
	case rec.Title == nil:
		missing = fieldTitle
	case rec.EpisodeID == nil:
		missing = fieldEpisodeID
	case rec.Starships == nil:
		missing = fieldStarships
	case rec.Vehicles == nil:
		missing = fieldVehicles
	case rec.Planets == nil:
		missing = fieldPlanets
	}
	if missing != "" {
		return &analysis.MissingFieldError{Index: index, Field: missing}
	}
	return nil
}

// HyperdriveRatio is the percentage of a film's ships that are starships.
// It is undefined when the film has no ships at all.
func HyperdriveRatio(starships, vehicles int) analysis.Value {
	total := starships + vehicles
	if total == 0 {
		return analysis.Undefined
	}
	return analysis.Defined(float64(starships) / float64(total) * 100)
}

func releaseYear(value string) analysis.Value {
	value = strings.TrimSpace(value)
	if value == "" {
		return analysis.Undefined
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return analysis.Undefined
	}
	return analysis.Int(parsed.Year())
}
