package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/statroll/internal/ability"
	"github.com/roach88/statroll/internal/constraint"
	"github.com/roach88/statroll/internal/predicate"
	"github.com/roach88/statroll/internal/render"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Scores      []int
	Preset      string
	File        string
	CUEFile     string
	Constraints []string
	Any         bool
	Database    string
}

// ConstraintResult is one constraint's verdict.
type ConstraintResult struct {
	Constraint constraint.Document `json:"constraint"`
	Phrase     string              `json:"phrase"`
	Pass       bool                `json:"pass"`
}

// CheckResult is the JSON payload of the check command.
type CheckResult struct {
	Scores   []int              `json:"scores"`
	NetScore int                `json:"net_score"`
	NetMod   int                `json:"net_mod"`
	Mode     string             `json:"mode"` // "all" | "any"
	Pass     bool               `json:"pass"`
	Results  []ConstraintResult `json:"results"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check existing scores against constraints",
		Long: `Check six already-rolled ability scores against constraints.

By default every constraint must hold. With --any, one is enough; an
empty constraint list then fails, since no constraint holds.

Exit codes:
  0 - The scores satisfy the constraints
  1 - The scores do not satisfy the constraints
  2 - Command error (wrong number of scores, invalid constraint, etc.)

Examples:
  statroll check --scores 9,15,13,16,8,18 --preset colville_classic
  statroll check --scores 12,16,8,8,9,10 -c netmod:>=:2 -c netscore:>=:70 --any`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, cmd)
		},
	}

	cmd.Flags().IntSliceVar(&opts.Scores, "scores", nil, "six comma-separated ability scores")
	cmd.Flags().StringVar(&opts.Preset, "preset", "", "constraint preset name")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "YAML constraint file")
	cmd.Flags().StringVar(&opts.CUEFile, "cue", "", "additional CUE preset file")
	cmd.Flags().StringArrayVarP(&opts.Constraints, "constraint", "c", nil, "constraint (repeatable)")
	cmd.Flags().BoolVar(&opts.Any, "any", false, "pass when any constraint holds")
	cmd.Flags().StringVar(&opts.Database, "db", "", "preset library (default from STATROLL_DB)")
	_ = cmd.MarkFlagRequired("scores")

	return cmd
}

func runCheck(opts *CheckOptions, cmd *cobra.Command) error {
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	set, err := ability.SetFromScores(opts.Scores)
	if err != nil {
		return out.Fail(ExitCommandError, CodeInvalidInput, "invalid scores", err)
	}

	cfg, err := opts.Config()
	if err != nil {
		return err
	}

	var cs []constraint.Constraint
	if opts.Preset != "" {
		presets, err := loadPresets(opts.CUEFile)
		if err != nil {
			return out.Fail(ExitCommandError, CodeInvalidInput, "failed to load presets", err)
		}
		p, err := findPreset(cmd.Context(), presets, opts.Preset, firstNonEmpty(opts.Database, cfg.DBPath))
		if err != nil {
			return out.Fail(ExitCommandError, CodeNotFound, fmt.Sprintf("preset %q not available", opts.Preset), err)
		}
		cs = append(cs, p.Constraints...)
	}
	if opts.File != "" {
		fileConstraints, err := constraint.LoadFile(opts.File)
		if err != nil {
			return out.Fail(ExitCommandError, CodeInvalidInput, "invalid constraint file", err)
		}
		cs = append(cs, fileConstraints...)
	}
	flagConstraints, err := constraint.ParseAll(opts.Constraints)
	if err != nil {
		return out.Fail(ExitCommandError, CodeInvalidInput, "invalid constraint", err)
	}
	cs = append(cs, flagConstraints...)

	preds, err := predicate.CompileAll(cs)
	if err != nil {
		return out.Fail(ExitCommandError, CodeInvalidInput, "invalid constraint", err)
	}

	result := CheckResult{
		Scores:   set.Scores(),
		NetScore: predicate.NetScore(set),
		NetMod:   predicate.NetMod(set),
		Mode:     "all",
		Results:  make([]ConstraintResult, len(cs)),
	}
	combined := predicate.All(preds...)
	if opts.Any {
		result.Mode = "any"
		combined = predicate.Any(preds...)
	}
	result.Pass = combined(set)
	for i, c := range cs {
		result.Results[i] = ConstraintResult{
			Constraint: constraint.ToDocument(c),
			Phrase:     render.Describe(c),
			Pass:       preds[i](set),
		}
	}

	summary := fmt.Sprintf("scores %v (net score %d, net mod %s) against %d constraint(s), %s must hold",
		result.Scores, result.NetScore, render.Modifier(result.NetMod), len(cs), result.Mode)

	if opts.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: result}
		if !result.Pass {
			resp.Status = "error"
			resp.Error = &CLIError{Code: CodeCheckFailed, Message: "scores do not satisfy the constraints"}
		}
		if err := out.Respond(resp); err != nil {
			return err
		}
	} else {
		r := render.New(render.StylesFor(cmd.OutOrStdout()))
		var sb strings.Builder
		sb.WriteString(summary)
		sb.WriteString("\n")
		for _, cr := range result.Results {
			sb.WriteString("  ")
			sb.WriteString(r.Verdict(cr.Pass, cr.Phrase))
		}
		sb.WriteString(r.Verdict(result.Pass, "overall"))
		if err := out.Success(nil, sb.String()); err != nil {
			return err
		}
	}

	if !result.Pass {
		return NewExitError(ExitFailure, "scores do not satisfy the constraints")
	}
	return nil
}
