package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"swstats/internal/analysis"
	"swstats/internal/characters"
	"swstats/internal/films"
	"swstats/internal/logging"
	"swstats/internal/swapi"
)

const (
	datasetFilms      = "films"
	datasetCharacters = "characters"
)

func loadFilms(ctx context.Context, source swapi.Source, logger *slog.Logger) (films.Table, error) {
	records, err := source.FetchFilms(ctx)
	if err != nil {
		return films.Table{}, fmt.Errorf("fetch films: %w", err)
	}
	table, err := films.Flatten(records)
	if err != nil {
		return films.Table{}, err
	}
	logger.Info("films loaded", logging.Int("rows", table.Len()))
	return table, nil
}

func loadCharacters(ctx context.Context, source swapi.Source, logger *slog.Logger) (characters.Table, error) {
	people, err := source.FetchPeople(ctx)
	if err != nil {
		return characters.Table{}, fmt.Errorf("fetch people: %w", err)
	}
	species, err := source.FetchSpecies(ctx)
	if err != nil {
		return characters.Table{}, fmt.Errorf("fetch species: %w", err)
	}
	table, err := characters.Flatten(people, characters.IndexSpecies(species))
	if err != nil {
		return characters.Table{}, err
	}
	logger.Info("characters loaded",
		logging.Int("rows", table.Len()),
		logging.Int("species", len(species)),
	)
	return table, nil
}

// loadDataset resolves the --dataset flag to a flattened frame.
func loadDataset(ctx context.Context, name string, source swapi.Source, logger *slog.Logger) (analysis.Frame, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case datasetFilms, "":
		return loadFilms(ctx, source, logger)
	case datasetCharacters:
		return loadCharacters(ctx, source, logger)
	default:
		return nil, fmt.Errorf("unknown dataset %q (want %s or %s)", name, datasetFilms, datasetCharacters)
	}
}
