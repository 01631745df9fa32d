package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/statroll/internal/ability"
	"github.com/roach88/statroll/internal/constraint"
	"github.com/roach88/statroll/internal/predicate"
	"github.com/roach88/statroll/internal/rollout"
)

// Renderer lays out sets, rollout results and constraint lists.
type Renderer struct {
	styles Styles
}

// New creates a Renderer using styles.
func New(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Plain creates a Renderer that never emits escape sequences.
func Plain() *Renderer {
	return New(PlainStyles())
}

var setHeaders = []string{"#", "score", "mod", "kept", "discarded"}

// Set renders the six draws as a table followed by the totals line.
func (r *Renderer) Set(set ability.Set) string {
	rows := make([][]string, 0, len(set))
	for i, d := range set {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(d.Score()),
			Modifier(d.Modifier()),
			faces(d.Kept),
			faces(d.Discarded),
		})
	}

	var sb strings.Builder
	sb.WriteString(r.table(setHeaders, rows))
	sb.WriteString(r.styles.Muted.Render(fmt.Sprintf("net score %d, net mod %s",
		predicate.NetScore(set), Modifier(predicate.NetMod(set)))))
	sb.WriteString("\n")
	return sb.String()
}

// Rollout renders a search outcome: a heading and, when a set was found, its
// table.
func (r *Renderer) Rollout(res rollout.Result) string {
	var sb strings.Builder
	if res.Found && res.Set != nil {
		sb.WriteString(r.styles.Success.Render(fmt.Sprintf("found on attempt %d of %d", res.Attempts, res.Tolerance)))
		sb.WriteString("\n")
		sb.WriteString(r.Set(*res.Set))
		return sb.String()
	}
	sb.WriteString(r.styles.Failure.Render(fmt.Sprintf("no set satisfied the constraints within %d attempts", res.Tolerance)))
	sb.WriteString("\n")
	return sb.String()
}

// Constraints renders a titled bullet list of constraint phrases.
func (r *Renderer) Constraints(title string, cs []constraint.Constraint) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(r.styles.Title.Render(title))
		sb.WriteString("\n")
	}
	if len(cs) == 0 {
		sb.WriteString(r.styles.Muted.Render("  (no constraints)"))
		sb.WriteString("\n")
		return sb.String()
	}
	for _, c := range cs {
		sb.WriteString("  - ")
		sb.WriteString(Describe(c))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Verdict renders a pass/fail line.
func (r *Renderer) Verdict(ok bool, msg string) string {
	if ok {
		return r.styles.Success.Render("PASS "+msg) + "\n"
	}
	return r.styles.Failure.Render("FAIL "+msg) + "\n"
}

// table left-aligns cells to the widest entry per column.
func (r *Renderer) table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string, style lipgloss.Style) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = style.Render(pad(cell, widths[i]))
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteString("\n")
	}

	writeRow(headers, r.styles.Header)
	for _, row := range rows {
		writeRow(row, r.styles.Cell)
	}
	return sb.String()
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func faces(fs []int) string {
	if len(fs) == 0 {
		return "-"
	}
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, " ")
}
