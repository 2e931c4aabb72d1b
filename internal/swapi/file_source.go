package swapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"swstats/internal/characters"
	"swstats/internal/films"
)

// FileSource reads resources from <dir>/<resource>.json.
type FileSource struct {
	dir string
}

var _ Source = (*FileSource)(nil)

// NewFileSource validates dir and returns a snapshot-backed Source.
func NewFileSource(dir string) (*FileSource, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("snapshot directory required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("snapshot directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("snapshot directory %s is not a directory", dir)
	}
	return &FileSource{dir: dir}, nil
}

func (s *FileSource) FetchFilms(ctx context.Context) ([]films.RawRecord, error) {
	return readResource[films.RawRecord](ctx, s.dir, ResourceFilms)
}

func (s *FileSource) FetchPeople(ctx context.Context) ([]characters.RawCharacter, error) {
	return readResource[characters.RawCharacter](ctx, s.dir, ResourcePeople)
}

func (s *FileSource) FetchSpecies(ctx context.Context) ([]characters.RawSpecies, error) {
	return readResource[characters.RawSpecies](ctx, s.dir, ResourceSpecies)
}

func readResource[T any](ctx context.Context, dir, resource string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, resource+".json")
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s snapshot: %w", resource, err)
	}
	defer file.Close()

	records, next, err := decodePayload[T](json.NewDecoder(file))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if next != "" {
		return nil, fmt.Errorf("%s holds a partial page (next=%s); save the full result list", path, next)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}
