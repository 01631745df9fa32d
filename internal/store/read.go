package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/statroll/internal/ability"
	"github.com/roach88/statroll/internal/preset"
)

// Preset is the value the library stores.
type Preset = preset.Preset

// Entry is a stored preset with its library metadata.
type Entry struct {
	Preset

	// ID is the content-addressed hash of the stored record.
	ID string

	// Seq is the logical position assigned on first save.
	Seq int64
}

// GetPreset returns the preset with the given name, or ErrPresetNotFound.
func (s *Store) GetPreset(ctx context.Context, name string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, method, constraints, seq
		FROM presets
		WHERE name = ?
	`, NormalizeName(name))

	e, err := s.scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("get preset %q: %w", name, ErrPresetNotFound)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get preset %q: %w", name, err)
	}
	return e, nil
}

// ListPresets returns every stored preset ordered by seq.
//
// Returns an empty slice (not nil) if the library is empty.
func (s *Store) ListPresets(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, method, constraints, seq
		FROM presets
		ORDER BY seq ASC, name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query presets: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := s.scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presets: %w", err)
	}

	return entries, nil
}

// Presets returns the stored presets without library metadata, ready to be
// merged with built-in and file presets.
func (s *Store) Presets(ctx context.Context) ([]preset.Preset, error) {
	entries, err := s.ListPresets(ctx)
	if err != nil {
		return nil, err
	}
	presets := make([]preset.Preset, len(entries))
	for i, e := range entries {
		presets[i] = e.Preset
	}
	return presets, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanEntry(row scanner) (Entry, error) {
	var (
		e               Entry
		method          string
		constraintsJSON string
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Description, &method, &constraintsJSON, &e.Seq); err != nil {
		return Entry{}, err
	}

	m, err := ability.ParseMethod(method)
	if err != nil {
		return Entry{}, fmt.Errorf("preset %q: %w", e.Name, err)
	}
	e.Method = m

	cs, err := unmarshalConstraints(constraintsJSON)
	if err != nil {
		return Entry{}, fmt.Errorf("preset %q: %w", e.Name, err)
	}
	e.Constraints = cs
	e.Source = s.source()

	return e, nil
}

// source labels presets read from this library.
func (s *Store) source() string {
	return "library:" + s.path
}
