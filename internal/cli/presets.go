package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/statroll/internal/constraint"
	"github.com/roach88/statroll/internal/preset"
	"github.com/roach88/statroll/internal/render"
	"github.com/roach88/statroll/internal/store"
)

// PresetsOptions holds flags for the presets command.
type PresetsOptions struct {
	*RootOptions
	CUEFile string
}

// PresetView is the JSON form of a preset.
type PresetView struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Method      string                `json:"method"`
	Source      string                `json:"source"`
	Constraints []constraint.Document `json:"constraints"`
	Phrases     []string              `json:"phrases"`
}

// NewPresetsCommand creates the presets command.
func NewPresetsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PresetsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List constraint presets",
		Long: `List the built-in constraint presets, plus any declared in a CUE file.

A preset file declares presets under the "preset" field:

  preset: heroic: {
    description: "Two 16s and a decent total"
    method:      "CLASSIC"
    constraints: [{kind: "NET_SCORE_CONSTRAINT", limit: "AT_LEAST", value: 72}]
  }

File presets replace built-in presets of the same name.

Examples:
  statroll presets
  statroll presets --cue ./my-presets.cue
  statroll presets --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.CUEFile, "cue", "", "additional CUE preset file")

	return cmd
}

func runPresets(opts *PresetsOptions, cmd *cobra.Command) error {
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	presets, err := loadPresets(opts.CUEFile)
	if err != nil {
		return out.Fail(ExitCommandError, CodeInvalidInput, "failed to load presets", err)
	}
	out.VerboseLog("loaded %d presets", len(presets))

	views := make([]PresetView, len(presets))
	for i, p := range presets {
		views[i] = presetView(p)
	}

	r := render.New(render.StylesFor(cmd.OutOrStdout()))
	var sb strings.Builder
	for _, p := range presets {
		sb.WriteString(r.Constraints(presetTitle(p), p.Constraints))
	}
	return out.Success(views, sb.String())
}

// loadPresets returns the built-in presets merged with those in cuePath.
func loadPresets(cuePath string) ([]preset.Preset, error) {
	presets, err := preset.Builtin()
	if err != nil {
		return nil, err
	}
	if cuePath == "" {
		return presets, nil
	}
	extra, err := preset.LoadFile(cuePath)
	if err != nil {
		return nil, err
	}
	return preset.Merge(presets, extra), nil
}

// findPreset looks name up in presets, falling back to the library at dbPath
// when that file exists. A missing library is not an error.
func findPreset(ctx context.Context, presets []preset.Preset, name, dbPath string) (preset.Preset, error) {
	if p, ok := preset.Lookup(presets, name); ok {
		return p, nil
	}
	if dbPath == "" {
		return preset.Find(presets, name)
	}
	if _, err := os.Stat(dbPath); err != nil {
		return preset.Find(presets, name)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return preset.Preset{}, err
	}
	defer s.Close()

	entry, err := s.GetPreset(ctx, name)
	if errors.Is(err, store.ErrPresetNotFound) {
		stored, listErr := s.Presets(ctx)
		if listErr != nil {
			return preset.Preset{}, listErr
		}
		return preset.Find(preset.Merge(presets, stored), name)
	}
	if err != nil {
		return preset.Preset{}, err
	}
	return entry.Preset, nil
}

func presetView(p preset.Preset) PresetView {
	return PresetView{
		Name:        p.Name,
		Description: p.Description,
		Method:      string(p.Method),
		Source:      p.Source,
		Constraints: p.Documents(),
		Phrases:     render.DescribeAll(p.Constraints),
	}
}

func presetTitle(p preset.Preset) string {
	title := fmt.Sprintf("%s (%s)", p.Name, p.Method)
	if p.Description != "" {
		title += ": " + p.Description
	}
	return title
}
