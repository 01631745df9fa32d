package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/statroll/internal/ability"
	"github.com/roach88/statroll/internal/constraint"
	"github.com/roach88/statroll/internal/dice"
	"github.com/roach88/statroll/internal/predicate"
	"github.com/roach88/statroll/internal/render"
	"github.com/roach88/statroll/internal/rollout"
)

// RollOptions holds flags for the roll command.
type RollOptions struct {
	*RootOptions
	Preset      string
	File        string
	CUEFile     string
	Constraints []string
	Method      string
	Tolerance   int
	Seed        int64
	Database    string
}

// DrawView is the JSON form of one ability score.
type DrawView struct {
	Score     int   `json:"score"`
	Modifier  int   `json:"modifier"`
	Kept      []int `json:"kept"`
	Discarded []int `json:"discarded"`
}

// RollResult is the JSON payload of the roll command.
type RollResult struct {
	Found       bool                  `json:"found"`
	Attempts    int                   `json:"attempts"`
	Tolerance   int                   `json:"tolerance"`
	Method      string                `json:"method"`
	Seed        int64                 `json:"seed"`
	Constraints []constraint.Document `json:"constraints"`
	Set         []DrawView            `json:"set,omitempty"`
	NetScore    *int                  `json:"net_score,omitempty"`
	NetMod      *int                  `json:"net_mod,omitempty"`
}

// NewRollCommand creates the roll command.
func NewRollCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RollOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll ability scores until the constraints hold",
		Long: `Roll sets of six ability scores until one satisfies every constraint.

Constraints come from a preset, a YAML constraint file and -c flags, in
that order. All of them must hold. Constraint flags use the forms:

  score:LIMIT:count:LIMIT:score   e.g. score:>=:2:>=:15
  netmod:LIMIT:value              e.g. netmod:AT_LEAST:2
  netscore:LIMIT:value            e.g. netscore:=:72

LIMIT is AT_LEAST, AT_MOST, EXACTLY or >=, <=, =.

Presets are looked up among the built-in presets, then the --cue file,
then the preset library (--db) if it exists.

Exit codes:
  0 - A set satisfied the constraints
  1 - No set satisfied the constraints within the tolerance
  2 - Command error (invalid constraint, unknown preset, etc.)

Examples:
  statroll roll
  statroll roll --preset colville_classic
  statroll roll -c netmod:>=:2 -c netscore:>=:72 --method CLASSIC
  statroll roll --file constraints.yaml --tolerance 2000 --seed 42`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoll(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Preset, "preset", "", "constraint preset name")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "YAML constraint file")
	cmd.Flags().StringVar(&opts.CUEFile, "cue", "", "additional CUE preset file")
	cmd.Flags().StringArrayVarP(&opts.Constraints, "constraint", "c", nil, "constraint (repeatable)")
	cmd.Flags().StringVarP(&opts.Method, "method", "m", "", "rolling method: STANDARD, CLASSIC or AUGMENTED")
	cmd.Flags().IntVarP(&opts.Tolerance, "tolerance", "t", 0, "maximum attempts (default from STATROLL_TOLERANCE)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "dice seed for a reproducible rollout (0 picks a fresh seed)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "preset library (default from STATROLL_DB)")

	return cmd
}

func runRoll(opts *RollOptions, cmd *cobra.Command) error {
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := opts.Config()
	if err != nil {
		return err
	}

	var cs []constraint.Constraint
	methodName := cfg.Method

	if opts.Preset != "" {
		presets, err := loadPresets(opts.CUEFile)
		if err != nil {
			return out.Fail(ExitCommandError, CodeInvalidInput, "failed to load presets", err)
		}
		p, err := findPreset(cmd.Context(), presets, opts.Preset, firstNonEmpty(opts.Database, cfg.DBPath))
		if err != nil {
			return out.Fail(ExitCommandError, CodeNotFound, fmt.Sprintf("preset %q not available", opts.Preset), err)
		}
		out.VerboseLog("using preset %s from %s", p.Name, p.Source)
		cs = append(cs, p.Constraints...)
		methodName = string(p.Method)
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

	if opts.Method != "" {
		methodName = opts.Method
	}
	method, err := ability.ParseMethod(methodName)
	if err != nil {
		return out.Fail(ExitCommandError, CodeInvalidInput, "invalid method", err)
	}

	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = opts.Seed
	}
	if seed == 0 {
		if seed, err = dice.NewSeed(); err != nil {
			return WrapExitError(ExitCommandError, "failed to seed dice", err)
		}
	}

	searcher := rollout.New(dice.NewRand(seed),
		rollout.WithLogger(opts.Logger(cmd.ErrOrStderr())),
		rollout.WithDefaultTolerance(cfg.Tolerance),
	)
	res, err := searcher.Search(rollout.Request{
		Constraints: cs,
		Method:      method,
		Tolerance:   opts.Tolerance,
	})
	if err != nil {
		return out.Fail(ExitCommandError, CodeInvalidInput, "invalid rollout request", err)
	}

	result := rollResult(res, method, seed, cs)

	if opts.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: result, TraceID: res.RunID}
		if !res.Found {
			resp.Status = "error"
			resp.Error = &CLIError{
				Code:    CodeExhausted,
				Message: fmt.Sprintf("no set satisfied the constraints within %d attempts", res.Tolerance),
			}
		}
		if err := out.Respond(resp); err != nil {
			return err
		}
	} else {
		r := render.New(render.StylesFor(cmd.OutOrStdout()))
		var sb strings.Builder
		sb.WriteString(r.Constraints(fmt.Sprintf("%s rollout", method), cs))
		sb.WriteString(r.Rollout(res))
		fmt.Fprintf(&sb, "seed %d, run %s\n", seed, res.RunID)
		if err := out.Success(nil, sb.String()); err != nil {
			return err
		}
	}

	if !res.Found {
		return NewExitError(ExitFailure, fmt.Sprintf("no set satisfied the constraints within %d attempts", res.Tolerance))
	}
	return nil
}

func rollResult(res rollout.Result, method ability.Method, seed int64, cs []constraint.Constraint) RollResult {
	result := RollResult{
		Found:       res.Found,
		Attempts:    res.Attempts,
		Tolerance:   res.Tolerance,
		Method:      string(method),
		Seed:        seed,
		Constraints: constraint.ToDocuments(cs),
	}
	if res.Set == nil {
		return result
	}

	set := *res.Set
	result.Set = make([]DrawView, len(set))
	for i, d := range set {
		discarded := d.Discarded
		if discarded == nil {
			discarded = []int{}
		}
		result.Set[i] = DrawView{
			Score:     d.Score(),
			Modifier:  d.Modifier(),
			Kept:      d.Kept,
			Discarded: discarded,
		}
	}
	netScore, netMod := predicate.NetScore(set), predicate.NetMod(set)
	result.NetScore = &netScore
	result.NetMod = &netMod
	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
