package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/statroll/internal/ability"
)

// SavePreset inserts or replaces the preset with p's normalized name.
//
// A new preset gets the next seq; replacing an existing one keeps its seq so
// listing order is stable. The returned Entry carries the stored ID and seq.
func (s *Store) SavePreset(ctx context.Context, p Preset) (Entry, error) {
	if NormalizeName(p.Name) == "" {
		return Entry{}, fmt.Errorf("save preset: %w", ErrEmptyName)
	}
	if _, err := ability.ParseMethod(string(p.Method)); err != nil {
		return Entry{}, fmt.Errorf("save preset %q: %w", p.Name, err)
	}

	rec := newRecord(p)
	id, err := presetID(rec)
	if err != nil {
		return Entry{}, fmt.Errorf("save preset %q: %w", rec.Name, err)
	}
	constraintsJSON, err := marshalConstraints(rec.Constraints)
	if err != nil {
		return Entry{}, fmt.Errorf("save preset %q: %w", rec.Name, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("save preset: begin: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	err = tx.QueryRowContext(ctx, `SELECT seq FROM presets WHERE name = ?`, rec.Name).Scan(&seq)
	switch {
	case err == sql.ErrNoRows:
		if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM presets`).Scan(&seq); err != nil {
			return Entry{}, fmt.Errorf("save preset: next seq: %w", err)
		}
	case err != nil:
		return Entry{}, fmt.Errorf("save preset: lookup: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO presets (id, name, description, method, constraints, seq)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			id = excluded.id,
			description = excluded.description,
			method = excluded.method,
			constraints = excluded.constraints
	`,
		id,
		rec.Name,
		rec.Description,
		rec.Method,
		constraintsJSON,
		seq,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("save preset %q: %w", rec.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return Entry{}, fmt.Errorf("save preset: commit: %w", err)
	}

	saved := p
	saved.Name = rec.Name
	saved.Source = s.source()
	return Entry{Preset: saved, ID: id, Seq: seq}, nil
}

// DeletePreset removes the preset with the given name. Returns
// ErrPresetNotFound when no such preset exists.
func (s *Store) DeletePreset(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM presets WHERE name = ?`, NormalizeName(name))
	if err != nil {
		return fmt.Errorf("delete preset %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete preset %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("delete preset %q: %w", name, ErrPresetNotFound)
	}
	return nil
}
