package preset

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/statroll/internal/ability"
	"github.com/roach88/statroll/internal/constraint"
)

//go:embed schema.cue
var schemaSource []byte

//go:embed builtin.cue
var builtinSource []byte

// SourceBuiltin marks presets that ship with the binary.
const SourceBuiltin = "builtin"

// Preset is a named constraint bundle.
type Preset struct {
	Name        string
	Description string
	Method      ability.Method
	Constraints []constraint.Constraint

	// Source is SourceBuiltin or the file the preset was loaded from.
	Source string
}

// Documents returns the preset's constraints in wire form.
func (p Preset) Documents() []constraint.Document {
	return constraint.ToDocuments(p.Constraints)
}

// rawPreset mirrors #Preset for cue.Value.Decode.
type rawPreset struct {
	Description string                `json:"description"`
	Method      string                `json:"method"`
	Constraints []constraint.Document `json:"constraints"`
}

var builtin = sync.OnceValues(func() ([]Preset, error) {
	return Compile(builtinSource, "builtin.cue", SourceBuiltin)
})

// Builtin returns the presets that ship with the binary, sorted by name.
func Builtin() ([]Preset, error) {
	presets, err := builtin()
	if err != nil {
		return nil, err
	}
	return slices.Clone(presets), nil
}

// LoadFile compiles the presets declared in a .cue file.
func LoadFile(path string) ([]Preset, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &CompileError{Field: "file", Message: err.Error()}
	}
	return Compile(src, path, path)
}

// Compile unifies src with the preset schema and decodes every preset it
// declares, sorted by name. filename is used in error positions; source is
// recorded on each Preset.
func Compile(src []byte, filename, source string) ([]Preset, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	file := ctx.CompileBytes(src, cue.Filename(filename))
	if err := file.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	v := schema.Unify(file)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	presetsVal := v.LookupPath(cue.ParsePath("preset"))
	if !presetsVal.Exists() {
		return nil, &CompileError{Field: "preset", Message: "no presets defined", Pos: file.Pos()}
	}
	iter, err := presetsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var presets []Preset
	for iter.Next() {
		p, err := compilePreset(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		p.Source = source
		presets = append(presets, p)
	}
	if len(presets) == 0 {
		return nil, &CompileError{
			Field:   "preset",
			Message: "no presets defined",
			Pos:     file.Pos(),
		}
	}

	slices.SortFunc(presets, func(a, b Preset) int {
		return strings.Compare(a.Name, b.Name)
	})
	return presets, nil
}

func compilePreset(name string, v cue.Value) (Preset, error) {
	field := "preset." + name

	var raw rawPreset
	if err := v.Decode(&raw); err != nil {
		return Preset{}, formatCUEError(err)
	}

	method, err := ability.ParseMethod(raw.Method)
	if err != nil {
		return Preset{}, &CompileError{Field: field + ".method", Message: err.Error(), Pos: v.Pos()}
	}

	cs, err := constraint.FromDocuments(raw.Constraints)
	if err != nil {
		return Preset{}, &CompileError{Field: field, Message: err.Error(), Pos: v.Pos()}
	}

	return Preset{
		Name:        name,
		Description: raw.Description,
		Method:      method,
		Constraints: cs,
	}, nil
}

// Lookup finds a preset by name.
func Lookup(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Merge returns base with every preset in extra added; an extra preset
// replaces a base preset of the same name. The result is sorted by name.
func Merge(base, extra []Preset) []Preset {
	byName := make(map[string]Preset, len(base)+len(extra))
	for _, p := range base {
		byName[p.Name] = p
	}
	for _, p := range extra {
		byName[p.Name] = p
	}

	merged := make([]Preset, 0, len(byName))
	for _, p := range byName {
		merged = append(merged, p)
	}
	slices.SortFunc(merged, func(a, b Preset) int {
		return strings.Compare(a.Name, b.Name)
	})
	return merged
}

// Names lists preset names in order.
func Names(presets []Preset) []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// NotFoundError reports a preset name that matched nothing.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown preset %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// Find is Lookup with a descriptive error.
func Find(presets []Preset, name string) (Preset, error) {
	if p, ok := Lookup(presets, name); ok {
		return p, nil
	}
	return Preset{}, &NotFoundError{Name: name, Available: Names(presets)}
}
