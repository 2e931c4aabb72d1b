package characters_test

import (
	"errors"
	"math"
	"testing"

	"swstats/internal/analysis"
	"swstats/internal/characters"
)

const (
	humanURL = "https://swapi.dev/api/species/1/"
	droidURL = "https://swapi.dev/api/species/2/"
	huttURL  = "https://swapi.dev/api/species/5/"
)

func person(name, height, mass string, species ...string) characters.RawCharacter {
	if species == nil {
		species = []string{}
	}
	return characters.RawCharacter{Name: &name, Height: &height, Mass: &mass, Species: species}
}

func speciesIndex() map[string]string {
	return characters.IndexSpecies([]characters.RawSpecies{
		{Name: "Human", URL: humanURL},
		{Name: "Droid", URL: droidURL},
		{Name: "Hutt", URL: huttURL},
	})
}

func TestFlattenParsesMeasurementsAndSpecies(t *testing.T) {
	table, err := characters.Flatten([]characters.RawCharacter{
		person("Luke Skywalker", "172", "77", humanURL),
		person("Jabba Desilijic Tiure", "175", "1,358", huttURL),
		person("Arvel Crynyd", "unknown", "unknown"),
		person("Mystery", "100", "10", "https://swapi.dev/api/species/99/"),
	}, speciesIndex())
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	if table.Len() != 4 {
		t.Fatalf("expected 4 rows, got %d", table.Len())
	}

	luke := table.Row(0)
	if luke.Species != "Human" {
		t.Fatalf("expected Human, got %q", luke.Species)
	}
	if bmi, _ := luke.BMI.Float64(); math.Abs(bmi-77/(1.72*1.72)) > 1e-9 {
		t.Fatalf("unexpected bmi %v", luke.BMI)
	}
	if mass, _ := table.Row(1).Mass.Float64(); mass != 1358 {
		t.Fatalf("expected thousands separator to parse, got %v", table.Row(1).Mass)
	}
	arvel := table.Row(2)
	if arvel.Height.IsDefined() || arvel.Mass.IsDefined() || arvel.BMI.IsDefined() {
		t.Fatalf("expected undefined measurements, got %+v", arvel)
	}
	if arvel.Species != characters.UnknownSpecies {
		t.Fatalf("expected unknown species for empty list, got %q", arvel.Species)
	}
	if table.Row(3).Species != characters.UnknownSpecies {
		t.Fatalf("expected unknown species for unresolved url, got %q", table.Row(3).Species)
	}
}

func TestFlattenMissingSpecies(t *testing.T) {
	rec := person("R2-D2", "96", "32", droidURL)
	rec.Species = nil

	_, err := characters.Flatten([]characters.RawCharacter{rec}, speciesIndex())
	var missing *analysis.MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "species" || missing.Index != 0 {
		t.Fatalf("expected missing species at index 0, got %v", err)
	}
}

func TestFlattenRejectsGarbageMeasurement(t *testing.T) {
	_, err := characters.Flatten([]characters.RawCharacter{
		person("Luke Skywalker", "172", "77", humanURL),
		person("Glitch", "tall", "77", humanURL),
	}, speciesIndex())
	var outOfRange *analysis.OutOfRangeError
	if !errors.As(err, &outOfRange) || outOfRange.Index != 1 || outOfRange.Field != "height" {
		t.Fatalf("expected height out of range at index 1, got %v", err)
	}

	for _, mass := range []string{"NaN", "nan", "inf", "+Inf", "-Inf", "-5"} {
		_, err := characters.Flatten([]characters.RawCharacter{person("Glitch", "172", mass, humanURL)}, speciesIndex())
		var outOfRange *analysis.OutOfRangeError
		if !errors.As(err, &outOfRange) || outOfRange.Field != "mass" {
			t.Errorf("mass %q: expected out of range error, got %v", mass, err)
		}
	}
}

func TestSpeciesSummaryOnlyKeepsRepeatedSpecies(t *testing.T) {
	table, err := characters.Flatten([]characters.RawCharacter{
		person("C-3PO", "167", "75", droidURL),
		person("Luke Skywalker", "172", "77", humanURL),
		person("R2-D2", "96", "32", droidURL),
		person("Jabba Desilijic Tiure", "175", "1,358", huttURL),
		person("R5-D4", "97", "32", droidURL),
	}, speciesIndex())
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}

	groups, err := analysis.AggregateBy(table, characters.ColSpecies, characters.ColMass, analysis.AggregateOptions{MinCount: 2})
	if err != nil {
		t.Fatalf("AggregateBy returned error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected only the droid group, got %v", groups.Keys())
	}
	droid := groups[0]
	if droid.Key != "Droid" || droid.Count != 3 {
		t.Fatalf("unexpected group: %+v", droid)
	}
	if got := droid.Mean.Or(-1); math.Abs(got-(75.0+32.0+32.0)/3.0) > 1e-9 {
		t.Fatalf("unexpected mean %v", got)
	}
}

func TestIndexSpeciesNormalizesTrailingSlash(t *testing.T) {
	index := characters.IndexSpecies([]characters.RawSpecies{{Name: "Wookiee", URL: "https://swapi.dev/api/species/3"}})
	table, err := characters.Flatten([]characters.RawCharacter{
		person("Chewbacca", "228", "112", "https://swapi.dev/api/species/3/"),
	}, index)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	if table.Row(0).Species != "Wookiee" {
		t.Fatalf("expected Wookiee, got %q", table.Row(0).Species)
	}
}
