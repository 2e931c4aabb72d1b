package testsupport

import (
	"fmt"

	"swstats/internal/characters"
	"swstats/internal/films"
)

const apiRoot = "https://swapi.dev/api"

// Species URLs used by the people fixtures.
const (
	HumanURL = apiRoot + "/species/1/"
	DroidURL = apiRoot + "/species/2/"
	HuttURL  = apiRoot + "/species/5/"
	YodaURL  = apiRoot + "/species/6/"
)

type filmFixture struct {
	title       string
	episode     int
	director    string
	releaseDate string
	starships   int
	vehicles    int
	planets     int
	characters  int
}

// Resource counts follow the public API's film records.
var filmFixtures = []filmFixture{
	{"A New Hope", 4, "George Lucas", "1977-05-25", 8, 4, 3, 18},
	{"The Empire Strikes Back", 5, "Irvin Kershner", "1980-05-17", 9, 6, 4, 16},
	{"Return of the Jedi", 6, "Richard Marquand", "1983-05-25", 12, 8, 5, 20},
	{"The Phantom Menace", 1, "George Lucas", "1999-05-19", 5, 7, 3, 34},
	{"Attack of the Clones", 2, "George Lucas", "2002-05-16", 5, 11, 5, 40},
	{"Revenge of the Sith", 3, "George Lucas", "2005-05-19", 12, 13, 13, 34},
}

func resourceURLs(resource string, n int) []string {
	urls := make([]string, n)
	for i := range urls {
		urls[i] = fmt.Sprintf("%s/%s/%d/", apiRoot, resource, i+1)
	}
	return urls
}

// Films returns the six-film fixture in API order.
func Films() []films.RawRecord {
	out := make([]films.RawRecord, 0, len(filmFixtures))
	for i, f := range filmFixtures {
		title := f.title
		episode := f.episode
		out = append(out, films.RawRecord{
			Title:       &title,
			EpisodeID:   &episode,
			Starships:   resourceURLs("starships", f.starships),
			Vehicles:    resourceURLs("vehicles", f.vehicles),
			Planets:     resourceURLs("planets", f.planets),
			Characters:  resourceURLs("people", f.characters),
			Species:     []string{},
			Director:    f.director,
			ReleaseDate: f.releaseDate,
			URL:         fmt.Sprintf("%s/films/%d/", apiRoot, i+1),
		})
	}
	return out
}

func person(name, height, mass string, species ...string) characters.RawCharacter {
	if species == nil {
		species = []string{}
	}
	return characters.RawCharacter{
		Name:    &name,
		Height:  &height,
		Mass:    &mass,
		Species: species,
		Films:   resourceURLs("films", 1),
	}
}

// People returns nine characters: three humans, three droids, a Hutt with a
// comma-formatted mass, Yoda, and one character with no species or
// measurements.
func People() []characters.RawCharacter {
	return []characters.RawCharacter{
		person("Luke Skywalker", "172", "77", HumanURL),
		person("C-3PO", "167", "75", DroidURL),
		person("R2-D2", "96", "32", DroidURL),
		person("Darth Vader", "202", "136", HumanURL),
		person("Leia Organa", "150", "49", HumanURL),
		person("R5-D4", "97", "32", DroidURL),
		person("Jabba Desilijic Tiure", "175", "1,358", HuttURL),
		person("Yoda", "66", "17", YodaURL),
		person("Arvel Crynyd", "unknown", "unknown"),
	}
}

// Species returns the species records referenced by People.
func Species() []characters.RawSpecies {
	return []characters.RawSpecies{
		{Name: "Human", URL: HumanURL},
		{Name: "Droid", URL: DroidURL},
		{Name: "Hutt", URL: HuttURL},
		{Name: "Yoda's species", URL: YodaURL},
	}
}
