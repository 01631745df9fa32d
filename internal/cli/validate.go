package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/statroll/internal/constraint"
	"github.com/roach88/statroll/internal/preset"
)

// FileValidation is the validation outcome of one file.
type FileValidation struct {
	Path  string           `json:"path"`
	Kind  string           `json:"kind"` // "presets" | "constraints"
	Valid bool             `json:"valid"`
	Count int              `json:"count"`
	Error *ValidationIssue `json:"error,omitempty"`
}

// ValidationIssue locates a validation error.
type ValidationIssue struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid bool             `json:"valid"`
	Files []FileValidation `json:"files"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate preset and constraint files",
		Long: `Validate CUE preset files (.cue) and YAML constraint files (.yaml, .yml)
without rolling anything.

Exit codes:
  0 - Every file is valid
  1 - At least one file is invalid
  2 - Command error (unsupported file type)`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	result := ValidationResult{Valid: true, Files: make([]FileValidation, 0, len(paths))}
	for _, path := range paths {
		formatter.VerboseLog("validating %s", path)
		fv, err := validateFile(path)
		if err != nil {
			return formatter.Fail(ExitCommandError, CodeInvalidInput, err.Error(), nil)
		}
		if !fv.Valid {
			result.Valid = false
		}
		result.Files = append(result.Files, fv)
	}

	if formatter.Format == "json" {
		resp := CLIResponse{Status: "ok", Data: result}
		if !result.Valid {
			resp.Status = "error"
			resp.Error = &CLIError{Code: CodeInvalidInput, Message: "validation failed"}
		}
		if err := formatter.Respond(resp); err != nil {
			return err
		}
	} else {
		outputValidateText(formatter, result)
	}

	if !result.Valid {
		// Validation failures = exit code 1 (test/validation failure)
		return NewExitError(ExitFailure, "validation failed")
	}
	return nil
}

// validateFile dispatches on the file extension. Only an unsupported
// extension is returned as an error; file problems land in the result.
func validateFile(path string) (FileValidation, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		fv := FileValidation{Path: path, Kind: "presets"}
		presets, err := preset.LoadFile(path)
		if err != nil {
			fv.Error = issueFrom(err)
			return fv, nil
		}
		fv.Valid, fv.Count = true, len(presets)
		return fv, nil
	case ".yaml", ".yml":
		fv := FileValidation{Path: path, Kind: "constraints"}
		cs, err := constraint.LoadFile(path)
		if err != nil {
			fv.Error = issueFrom(err)
			return fv, nil
		}
		fv.Valid, fv.Count = true, len(cs)
		return fv, nil
	default:
		return FileValidation{}, fmt.Errorf("unsupported file type %q: want .cue, .yaml or .yml", path)
	}
}

func issueFrom(err error) *ValidationIssue {
	var pe *preset.CompileError
	if errors.As(err, &pe) {
		issue := &ValidationIssue{Code: "PRESET_COMPILE", Field: pe.Field, Message: pe.Message}
		if pe.Pos.IsValid() {
			issue.Line = pe.Pos.Line()
		}
		return issue
	}
	var ce *constraint.Error
	if errors.As(err, &ce) {
		return &ValidationIssue{Code: ce.Code, Field: ce.Field, Message: err.Error()}
	}
	return &ValidationIssue{Code: CodeInvalidInput, Message: err.Error()}
}

func outputValidateText(formatter *OutputFormatter, result ValidationResult) {
	w := formatter.Writer
	for _, fv := range result.Files {
		if fv.Valid {
			fmt.Fprintf(w, "✓ %s (%d %s)\n", fv.Path, fv.Count, fv.Kind)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", fv.Path)
		if fv.Error.Line > 0 {
			fmt.Fprintf(w, "  line %d\n", fv.Error.Line)
		}
		fmt.Fprintf(w, "  %s: %s\n", fv.Error.Code, fv.Error.Message)
	}
}
