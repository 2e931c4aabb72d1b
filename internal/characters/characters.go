// Package characters flattens SWAPI people records into a per-character
// analysis table with species labels and body measurements.
package characters

import (
	"math"
	"strconv"
	"strings"

	"swstats/internal/analysis"
)

// UnknownSpecies labels characters whose species list is empty or does not
// resolve to a known species record.
const UnknownSpecies = "Unknown"

// RawCharacter is one person record as returned by the retrieval service.
// Measurements arrive as strings ("172", "1,358", "unknown").
type RawCharacter struct {
	Name      *string  `json:"name"`
	Height    *string  `json:"height"`
	Mass      *string  `json:"mass"`
	Species   []string `json:"species"`
	Gender    string   `json:"gender"`
	Homeworld string   `json:"homeworld"`
	Films     []string `json:"films"`
	URL       string   `json:"url"`
}

// RawSpecies is the subset of a species record needed to label characters.
type RawSpecies struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Row is the flattened representation of one character.
type Row struct {
	Name      string         `json:"name" yaml:"name"`
	Species   string         `json:"species" yaml:"species"`
	Gender    string         `json:"gender" yaml:"gender"`
	Height    analysis.Value `json:"height" yaml:"height"`
	Mass      analysis.Value `json:"mass" yaml:"mass"`
	BMI       analysis.Value `json:"bmi" yaml:"bmi"`
	FilmCount int            `json:"film_count" yaml:"film_count"`
}

// IndexSpecies builds the species URL to name lookup used by Flatten.
func IndexSpecies(species []RawSpecies) map[string]string {
	index := make(map[string]string, len(species))
	for _, s := range species {
		url := normalizeURL(s.URL)
		name := strings.TrimSpace(s.Name)
		if url == "" || name == "" {
			continue
		}
		index[url] = name
	}
	return index
}

// Flatten converts people into a Table with one row per record, in order.
// speciesNames maps species URLs to display names.
func Flatten(people []RawCharacter, speciesNames map[string]string) (Table, error) {
	rows := make([]Row, 0, len(people))
	for i, person := range people {
		row, err := flattenPerson(i, person, speciesNames)
		if err != nil {
			return Table{}, err
		}
		rows = append(rows, row)
	}
	return Table{rows: rows}, nil
}

func flattenPerson(index int, person RawCharacter, speciesNames map[string]string) (Row, error) {
	switch {
	case person.Name == nil:
		return Row{}, &analysis.MissingFieldError{Index: index, Field: "name"}
	case person.Height == nil:
		return Row{}, &analysis.MissingFieldError{Index: index, Field: "height"}
	case person.Mass == nil:
		return Row{}, &analysis.MissingFieldError{Index: index, Field: "mass"}
	case person.Species == nil:
		return Row{}, &analysis.MissingFieldError{Index: index, Field: "species"}
	}

	height, ok := parseMeasure(*person.Height)
	if !ok {
		return Row{}, &analysis.OutOfRangeError{Index: index, Field: "height", Value: strconv.Quote(*person.Height)}
	}
	mass, ok := parseMeasure(*person.Mass)
	if !ok {
		return Row{}, &analysis.OutOfRangeError{Index: index, Field: "mass", Value: strconv.Quote(*person.Mass)}
	}

	return Row{
		Name:      strings.TrimSpace(*person.Name),
		Species:   speciesLabel(person.Species, speciesNames),
		Gender:    strings.TrimSpace(person.Gender),
		Height:    height,
		Mass:      mass,
		BMI:       BodyMassIndex(height, mass),
		FilmCount: len(person.Films),
	}, nil
}

// BodyMassIndex is mass (kg) over height (m) squared. Height arrives in cm.
func BodyMassIndex(heightCM, massKG analysis.Value) analysis.Value {
	h, okH := heightCM.Float64()
	m, okM := massKG.Float64()
	if !okH || !okM || h <= 0 {
		return analysis.Undefined
	}
	meters := h / 100
	return analysis.Defined(m / (meters * meters))
}

// parseMeasure reads a SWAPI measurement. Placeholder strings yield an
// undefined value; anything else must be a non-negative number.
func parseMeasure(raw string) (analysis.Value, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "", "unknown", "n/a", "none":
		return analysis.Undefined, true
	}
	value = strings.ReplaceAll(value, ",", "")
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return analysis.Undefined, false
	}
	return analysis.Defined(parsed), true
}

func speciesLabel(urls []string, names map[string]string) string {
	if len(urls) == 0 {
		return UnknownSpecies
	}
	if name, ok := names[normalizeURL(urls[0])]; ok {
		return name
	}
	return UnknownSpecies
}

func normalizeURL(url string) string {
	return strings.TrimRight(strings.TrimSpace(url), "/")
}
