package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"viavictl/internal/catalog"
	"viavictl/internal/pipeline"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format of the test list
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates an --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	case "":
		return OutputFormatText, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Printer renders command output. Styling is applied only when the
// writer is a terminal.
type Printer struct {
	out    io.Writer
	format OutputFormat

	header lipgloss.Style
	id     lipgloss.Style
	label  lipgloss.Style
	link   lipgloss.Style
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, format OutputFormat) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:    out,
		format: format,
		header: r.NewStyle().Bold(true),
		id:     r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FD7FF"}),
		label:  r.NewStyle().Faint(true),
		link:   r.NewStyle().Underline(true).Foreground(lipgloss.AdaptiveColor{Light: "#00875F", Dark: "#5FFF87"}),
	}
}

type testEntry struct {
	ID               string `json:"id" yaml:"id"`
	Description      string `json:"description" yaml:"description"`
	CampaignFilename string `json:"campaign_filename" yaml:"campaign_filename"`
}

// PrintTestList prints every test id with its description.
func (p *Printer) PrintTestList(tests []catalog.Test) error {
	switch p.format {
	case OutputFormatJSON, OutputFormatYAML:
		entries := make([]testEntry, 0, len(tests))
		for _, t := range tests {
			entries = append(entries, testEntry{ID: t.ID, Description: t.Description, CampaignFilename: t.CampaignFilename})
		}
		return p.encode(entries)
	}

	fmt.Fprintln(p.out, p.header.Render("Available tests:"))
	for _, t := range tests {
		fmt.Fprintf(p.out, "    ⊛ id: %s\n", p.id.Render(t.ID))
		fmt.Fprintf(p.out, "        · %s %s\n", p.label.Render("Description:"), t.Description)
		fmt.Fprintln(p.out)
	}
	return nil
}

func (p *Printer) encode(v interface{}) error {
	if p.format == OutputFormatJSON {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	return enc.Close()
}

// PrintRunSummary prints what is about to be triggered.
func (p *Printer) PrintRunSummary(params pipeline.RunParameters, test catalog.Test, vars pipeline.Variables) {
	osName, _ := vars.Get("OS")
	fmt.Fprintf(p.out, "Creating Viavi pipeline for branch %s...\n", params.Branch)
	fmt.Fprintf(p.out, "    - Test ID: %s\n", test.ID)
	fmt.Fprintf(p.out, "    - Extra arguments to gnb binary: %s\n", params.GnbExtra)
	fmt.Fprintf(p.out, "    - BUILD_ARGS %s\n", params.BuildArgs)
	fmt.Fprintf(p.out, "    - DPDK_VERSION %s\n", params.DPDKVersion)
	fmt.Fprintf(p.out, "    - OS %s\n", osName)
}

// PrintPipelineCreated prints the web URL of the new pipeline.
func (p *Printer) PrintPipelineCreated(url string) {
	fmt.Fprintf(p.out, "Pipeline created: %s\n", p.link.Render(url))
}
