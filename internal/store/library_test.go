package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/roach88/statroll/internal/ability"
	"github.com/roach88/statroll/internal/constraint"
)

func TestSavePreset_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	p := Preset{
		Name:        "heroic",
		Description: "no dump stats",
		Method:      ability.Classic,
		Constraints: []constraint.Constraint{
			constraint.ScoreConstraint{
				NumScoresLimit: constraint.Exactly,
				NumScores:      0,
				ScoreLimit:     constraint.AtMost,
				Score:          8,
			},
			constraint.NetModConstraint{Limit: constraint.AtLeast, Value: 3},
		},
	}

	saved, err := s.SavePreset(ctx, p)
	if err != nil {
		t.Fatalf("SavePreset() failed: %v", err)
	}
	if saved.Seq != 1 {
		t.Errorf("Seq = %d, want 1", saved.Seq)
	}
	if len(saved.ID) != 64 {
		t.Errorf("ID = %q, want 64 hex chars", saved.ID)
	}

	got, err := s.GetPreset(ctx, "heroic")
	if err != nil {
		t.Fatalf("GetPreset() failed: %v", err)
	}
	if got.ID != saved.ID {
		t.Errorf("ID = %q, want %q", got.ID, saved.ID)
	}
	if got.Method != ability.Classic {
		t.Errorf("Method = %q, want CLASSIC", got.Method)
	}
	if got.Description != "no dump stats" {
		t.Errorf("Description = %q", got.Description)
	}
	if diff := cmp.Diff(p.Constraints, got.Constraints); diff != "" {
		t.Errorf("constraints mismatch (-want +got):\n%s", diff)
	}
	if got.Source != "library:"+s.Path() {
		t.Errorf("Source = %q", got.Source)
	}
}

func TestSavePreset_IDIsContentAddressed(t *testing.T) {
	a := createTestStore(t)
	b := createTestStore(t)
	ctx := context.Background()

	// Different insertion histories, same content.
	if _, err := b.SavePreset(ctx, createTestPreset("other", 60)); err != nil {
		t.Fatalf("SavePreset() failed: %v", err)
	}

	ea, err := a.SavePreset(ctx, createTestPreset("mercer", 70))
	if err != nil {
		t.Fatalf("SavePreset() failed: %v", err)
	}
	eb, err := b.SavePreset(ctx, createTestPreset("mercer", 70))
	if err != nil {
		t.Fatalf("SavePreset() failed: %v", err)
	}

	if ea.ID != eb.ID {
		t.Errorf("same content produced different IDs: %s vs %s", ea.ID, eb.ID)
	}
	if ea.Seq == eb.Seq {
		t.Errorf("seq should reflect each library's history, both are %d", ea.Seq)
	}

	changed, err := a.SavePreset(ctx, createTestPreset("mercer", 71))
	if err != nil {
		t.Fatalf("SavePreset() failed: %v", err)
	}
	if changed.ID == ea.ID {
		t.Error("changing a constraint should change the ID")
	}
}

func TestSavePreset_UpsertKeepsSeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		if _, err := s.SavePreset(ctx, createTestPreset(name, 70)); err != nil {
			t.Fatalf("SavePreset(%s) failed: %v", name, err)
		}
	}

	updated, err := s.SavePreset(ctx, createTestPreset("a", 75))
	if err != nil {
		t.Fatalf("SavePreset() update failed: %v", err)
	}
	if updated.Seq != 1 {
		t.Errorf("updated Seq = %d, want 1", updated.Seq)
	}

	entries, err := s.ListPresets(ctx)
	if err != nil {
		t.Fatalf("ListPresets() failed: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, names); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	want := constraint.NetScoreConstraint{Limit: constraint.AtLeast, Value: 75}
	if diff := cmp.Diff([]constraint.Constraint{want}, entries[0].Constraints); diff != "" {
		t.Errorf("update not applied (-want +got):\n%s", diff)
	}
}

func TestSavePreset_NormalizesName(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Decomposed "cafe" plus a combining acute, with padding.
	if _, err := s.SavePreset(ctx, createTestPreset("  cafe\u0301 ", 70)); err != nil {
		t.Fatalf("SavePreset() failed: %v", err)
	}

	got, err := s.GetPreset(ctx, "caf\u00e9")
	if err != nil {
		t.Fatalf("GetPreset() with composed name failed: %v", err)
	}
	if got.Name != "caf\u00e9" {
		t.Errorf("Name = %q, want NFC form", got.Name)
	}
}

func TestSavePreset_Rejects(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.SavePreset(ctx, createTestPreset("   ", 70)); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank name: got %v, want ErrEmptyName", err)
	}

	bad := createTestPreset("bad", 70)
	bad.Method = "HEROIC"
	if _, err := s.SavePreset(ctx, bad); !errors.Is(err, ability.ErrUnknownMethod) {
		t.Errorf("bad method: got %v, want ErrUnknownMethod", err)
	}

	entries, err := s.ListPresets(ctx)
	if err != nil {
		t.Fatalf("ListPresets() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("rejected presets were stored: %d entries", len(entries))
	}
}

func TestSavePreset_NoConstraints(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.SavePreset(ctx, Preset{Name: "anything", Method: ability.Augmented}); err != nil {
		t.Fatalf("SavePreset() failed: %v", err)
	}

	got, err := s.GetPreset(ctx, "anything")
	if err != nil {
		t.Fatalf("GetPreset() failed: %v", err)
	}
	if got.Constraints == nil || len(got.Constraints) != 0 {
		t.Errorf("Constraints = %#v, want empty non-nil slice", got.Constraints)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.GetPreset(context.Background(), "missing")
	if !errors.Is(err, ErrPresetNotFound) {
		t.Errorf("got %v, want ErrPresetNotFound", err)
	}
}

func TestListPresets_Empty(t *testing.T) {
	s := createTestStore(t)

	entries, err := s.ListPresets(context.Background())
	if err != nil {
		t.Fatalf("ListPresets() failed: %v", err)
	}
	if entries == nil {
		t.Error("ListPresets() returned nil, want empty slice")
	}
}

func TestDeletePreset(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.SavePreset(ctx, createTestPreset("gone", 70)); err != nil {
		t.Fatalf("SavePreset() failed: %v", err)
	}
	if err := s.DeletePreset(ctx, "gone"); err != nil {
		t.Fatalf("DeletePreset() failed: %v", err)
	}
	if _, err := s.GetPreset(ctx, "gone"); !errors.Is(err, ErrPresetNotFound) {
		t.Errorf("after delete: got %v, want ErrPresetNotFound", err)
	}
	if err := s.DeletePreset(ctx, "gone"); !errors.Is(err, ErrPresetNotFound) {
		t.Errorf("second delete: got %v, want ErrPresetNotFound", err)
	}
}

func TestPresets_StripsMetadata(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.SavePreset(ctx, createTestPreset("mine", 72)); err != nil {
		t.Fatalf("SavePreset() failed: %v", err)
	}

	presets, err := s.Presets(ctx)
	if err != nil {
		t.Fatalf("Presets() failed: %v", err)
	}
	if len(presets) != 1 || presets[0].Name != "mine" {
		t.Errorf("Presets() = %+v", presets)
	}
}

func TestStoredConstraintsAreCanonical(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, err := s.SavePreset(ctx, createTestPreset("mercer", 70)); err != nil {
		t.Fatalf("SavePreset() failed: %v", err)
	}

	var raw string
	if err := s.db.QueryRow("SELECT constraints FROM presets WHERE name = 'mercer'").Scan(&raw); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	want := `[{"kind":"NET_SCORE_CONSTRAINT","limit":"AT_LEAST","value":70}]`
	if raw != want {
		t.Errorf("constraints column = %s, want %s", raw, want)
	}
}
