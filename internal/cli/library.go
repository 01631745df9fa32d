package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/statroll/internal/ability"
	"github.com/roach88/statroll/internal/constraint"
	"github.com/roach88/statroll/internal/render"
	"github.com/roach88/statroll/internal/store"
)

// LibraryOptions holds flags shared by the library subcommands.
type LibraryOptions struct {
	*RootOptions
	Database string
}

// LibraryEntryView is the JSON form of a stored preset.
type LibraryEntryView struct {
	PresetView
	ID  string `json:"id"`
	Seq int64  `json:"seq"`
}

// NewLibraryCommand creates the library command and its subcommands.
func NewLibraryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LibraryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the saved preset library",
		Long: `Save, list, show and delete named constraint sets in a SQLite library.

The library holds constraint sets only, never rolled scores. Saved presets
can be used anywhere a preset name is accepted.`,
		Args: cobra.NoArgs,
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "preset library (default from STATROLL_DB)")

	cmd.AddCommand(newLibrarySaveCommand(opts))
	cmd.AddCommand(newLibraryListCommand(opts))
	cmd.AddCommand(newLibraryShowCommand(opts))
	cmd.AddCommand(newLibraryDeleteCommand(opts))

	return cmd
}

// open opens the library named by --db or STATROLL_DB.
func (o *LibraryOptions) open() (*store.Store, error) {
	cfg, err := o.Config()
	if err != nil {
		return nil, err
	}
	path := firstNonEmpty(o.Database, cfg.DBPath)
	s, err := store.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("failed to open library %s", path), err)
	}
	return s, nil
}

func (o *LibraryOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

type librarySaveOptions struct {
	*LibraryOptions
	Description string
	Method      string
	File        string
	Constraints []string
}

func newLibrarySaveCommand(libOpts *LibraryOptions) *cobra.Command {
	opts := &librarySaveOptions{LibraryOptions: libOpts}

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a named constraint set",
		Long: `Save a named constraint set, replacing any preset with the same name.

Names are compared after trimming whitespace and Unicode NFC normalization.

Examples:
  statroll library save heroic -c netscore:>=:75 -c score:>=:2:>=:16
  statroll library save gritty --file gritty.yaml --method CLASSIC`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLibrarySave(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "preset description")
	cmd.Flags().StringVarP(&opts.Method, "method", "m", string(ability.Standard), "rolling method")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "YAML constraint file")
	cmd.Flags().StringArrayVarP(&opts.Constraints, "constraint", "c", nil, "constraint (repeatable)")

	return cmd
}

func runLibrarySave(opts *librarySaveOptions, name string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	method, err := ability.ParseMethod(opts.Method)
	if err != nil {
		return out.Fail(ExitCommandError, CodeInvalidInput, "invalid method", err)
	}

	var cs []constraint.Constraint
	if opts.File != "" {
		if cs, err = constraint.LoadFile(opts.File); err != nil {
			return out.Fail(ExitCommandError, CodeInvalidInput, "invalid constraint file", err)
		}
	}
	flagConstraints, err := constraint.ParseAll(opts.Constraints)
	if err != nil {
		return out.Fail(ExitCommandError, CodeInvalidInput, "invalid constraint", err)
	}
	cs = append(cs, flagConstraints...)

	s, err := opts.open()
	if err != nil {
		return err
	}
	defer s.Close()

	entry, err := s.SavePreset(cmd.Context(), store.Preset{
		Name:        name,
		Description: opts.Description,
		Method:      method,
		Constraints: cs,
	})
	if err != nil {
		return out.Fail(ExitCommandError, CodeInvalidInput, "failed to save preset", err)
	}

	return out.Success(entryView(entry), fmt.Sprintf("saved %s (%d constraint(s), id %s)\n", entry.Name, len(entry.Constraints), shortID(entry.ID)))
}

func newLibraryListCommand(opts *LibraryOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List saved presets in save order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)

			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.Close()

			entries, err := s.ListPresets(cmd.Context())
			if err != nil {
				return out.Fail(ExitCommandError, CodeInvalidInput, "failed to list presets", err)
			}

			views := make([]LibraryEntryView, len(entries))
			var sb strings.Builder
			for i, e := range entries {
				views[i] = entryView(e)
				fmt.Fprintf(&sb, "%d  %s  %s  %s\n", e.Seq, e.Name, e.Method, shortID(e.ID))
			}
			if len(entries) == 0 {
				sb.WriteString("No saved presets.\n")
			}
			return out.Success(views, sb.String())
		},
	}
}

func newLibraryShowCommand(opts *LibraryOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <name>",
		Short:         "Show a saved preset",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)

			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.Close()

			entry, err := s.GetPreset(cmd.Context(), args[0])
			if err != nil {
				return libraryLookupError(out, args[0], err)
			}

			r := render.New(render.StylesFor(cmd.OutOrStdout()))
			text := r.Constraints(presetTitle(entry.Preset), entry.Constraints) +
				fmt.Sprintf("id %s, seq %d\n", entry.ID, entry.Seq)
			return out.Success(entryView(entry), text)
		},
	}
}

func newLibraryDeleteCommand(opts *LibraryOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <name>",
		Short:         "Delete a saved preset",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)

			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.DeletePreset(cmd.Context(), args[0]); err != nil {
				return libraryLookupError(out, args[0], err)
			}
			return out.Success(map[string]string{"deleted": store.NormalizeName(args[0])},
				fmt.Sprintf("deleted %s\n", store.NormalizeName(args[0])))
		},
	}
}

func libraryLookupError(out *OutputFormatter, name string, err error) error {
	if errors.Is(err, store.ErrPresetNotFound) {
		return out.Fail(ExitCommandError, CodeNotFound, fmt.Sprintf("no saved preset named %q", name), err)
	}
	return out.Fail(ExitCommandError, CodeInvalidInput, "library error", err)
}

func entryView(e store.Entry) LibraryEntryView {
	return LibraryEntryView{
		PresetView: presetView(e.Preset),
		ID:         e.ID,
		Seq:        e.Seq,
	}
}

// shortID abbreviates a content hash for text output.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
