// Package report renders build plans, the option schema and recipe metadata
// as styled text, JSON or YAML.
package report

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/ui/output"
	"go.trai.ch/recipe/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Format selects the rendering of a report.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a --format flag value. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "invalid --format"), "format", s)
	}
}

// Entry is a plan together with the profile it was resolved for.
type Entry struct {
	Label string
	Plan  *domain.BuildPlan
}

// Renderer writes reports to an output in one format.
type Renderer struct {
	w      io.Writer
	format Format

	title lipgloss.Style
	key   lipgloss.Style
	on    lipgloss.Style
	off   lipgloss.Style
}

// New creates a Renderer writing to w. Colors honor NO_COLOR.
func New(w io.Writer, format Format) *Renderer {
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(output.ColorProfile())

	return &Renderer{
		w:      w,
		format: format,
		title:  lr.NewStyle().Bold(true).Foreground(style.Iris),
		key:    lr.NewStyle().Foreground(style.Slate),
		on:     lr.NewStyle().Foreground(style.Green),
		off:    lr.NewStyle().Foreground(style.Slate),
	}
}

// Plan renders a single plan.
func (r *Renderer) Plan(entry Entry) error {
	switch r.format {
	case FormatJSON:
		return r.encodeJSON(newPlanDoc(entry))
	case FormatYAML:
		return r.encodeYAML(newPlanDoc(entry))
	default:
		return r.writeText(r.planText(entry))
	}
}

// Plans renders several plans in order.
func (r *Renderer) Plans(entries []Entry) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		docs := make([]planDoc, len(entries))
		for i, entry := range entries {
			docs[i] = newPlanDoc(entry)
		}
		if r.format == FormatJSON {
			return r.encodeJSON(docs)
		}
		return r.encodeYAML(docs)
	default:
		blocks := make([]string, len(entries))
		for i, entry := range entries {
			blocks[i] = r.planText(entry)
		}
		return r.writeText(strings.Join(blocks, "\n"))
	}
}

// Options renders the option schema.
func (r *Renderer) Options(defs []domain.OptionDef) error {
	docs := make([]optionDoc, len(defs))
	for i, def := range defs {
		docs[i] = optionDoc{
			Name:        string(def.Name),
			Domain:      def.Domain,
			Default:     def.Default,
			Description: def.Description,
		}
	}

	switch r.format {
	case FormatJSON:
		return r.encodeJSON(docs)
	case FormatYAML:
		return r.encodeYAML(docs)
	default:
		return r.writeText(r.optionsText(docs))
	}
}

// Recipe renders the recipe metadata.
func (r *Renderer) Recipe(recipe domain.Recipe) error {
	switch r.format {
	case FormatJSON:
		return r.encodeJSON(recipe)
	case FormatYAML:
		return r.encodeYAML(recipe)
	default:
		return r.writeText(r.recipeText(recipe))
	}
}

func (r *Renderer) encodeJSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) encodeYAML(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (r *Renderer) writeText(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

type planDoc struct {
	Profile      string                    `json:"profile,omitempty" yaml:"profile,omitempty"`
	Platform     domain.Platform           `json:"platform" yaml:"platform"`
	Fingerprint  string                    `json:"fingerprint" yaml:"fingerprint"`
	Options      domain.OptionSet          `json:"options" yaml:"options"`
	Dependencies []domain.DependencySpec   `json:"dependencies" yaml:"dependencies"`
	Variables    domain.ToolchainVariables `json:"variables" yaml:"variables"`
}

func newPlanDoc(entry Entry) planDoc {
	deps := entry.Plan.Dependencies
	if deps == nil {
		deps = []domain.DependencySpec{}
	}
	return planDoc{
		Profile:      entry.Label,
		Platform:     entry.Plan.Platform,
		Fingerprint:  entry.Plan.Fingerprint(),
		Options:      entry.Plan.Options,
		Dependencies: deps,
		Variables:    entry.Plan.Variables,
	}
}

type optionDoc struct {
	Name        string `json:"name" yaml:"name"`
	Domain      []bool `json:"domain" yaml:"domain,flow"`
	Default     bool   `json:"default" yaml:"default"`
	Description string `json:"description" yaml:"description"`
}
