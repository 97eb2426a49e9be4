package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"go.yaml.in/yaml/v3"

	"github.com/avadakedavra-wp/fazrepo/internal/config"
	"github.com/avadakedavra-wp/fazrepo/internal/probe"
	"github.com/avadakedavra-wp/fazrepo/internal/scaffold"
	"github.com/avadakedavra-wp/fazrepo/internal/templates"
)

// CLI palette.
var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	stylePrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"})
	styleAccent  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"})
)

// colorEnabled reports whether output to w should be styled.
func colorEnabled(w io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if appConfig != nil && !appConfig.Settings.ColorOutput {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printer writes human-readable output, styled only when color is on.
type printer struct {
	w     io.Writer
	color bool
}

func newPrinter(w io.Writer, color bool) *printer {
	return &printer{w: w, color: color}
}

func (p *printer) paint(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func (p *printer) println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func (p *printer) printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

func (p *printer) header(s string) {
	p.println(p.paint(stylePrimary.Bold(true), s))
}

func (p *printer) errorLine(msg string) {
	p.println(p.paint(styleError.Bold(true), "❌ Error:"), p.paint(styleError, msg))
}

func (p *printer) checkResults(results []probe.CheckResult, detailed bool) {
	p.header("🔍 Checking package manager versions...")
	p.println()

	for _, r := range results {
		pm := r.Manager
		name := p.paint(styleAccent.Bold(true), pm.Name)
		if detailed {
			name = p.paint(styleAccent.Bold(true), pm.DisplayLabel())
		}

		switch {
		case r.Success && detailed:
			p.println(p.paint(styleSuccess, "✅"), name, pm.VersionDisplay())
			p.printf("   📍 Path: %s\n", p.paint(styleMuted, pm.PathDisplay()))
		case r.Success:
			p.printf("%s %s %s (%s)\n", p.paint(styleSuccess, "✅"), name, pm.VersionDisplay(), p.paint(styleMuted, pm.PathDisplay()))
		case detailed:
			p.println(p.paint(styleWarn, "⚠️"), name, p.paint(styleError, "version check failed"))
			if pm.Path != "" {
				p.printf("   📍 Path: %s\n", p.paint(styleMuted, pm.Path))
			}
			if r.ErrorMessage != "" {
				p.printf("   ❌ Error: %s\n", p.paint(styleMuted, r.ErrorMessage))
			}
		case pm.Installed:
			p.println(p.paint(styleWarn, "⚠️"), name, p.paint(styleError, "installed but not working"))
		default:
			p.println(p.paint(styleError, "❌"), name, p.paint(styleError, "not installed"))
		}
	}
}

func (p *printer) templateList(list []templates.Template) {
	p.header("📋 Available Project Templates:")
	p.println()

	for _, t := range list {
		p.printf("%s %s - %s\n", p.paint(styleAccent, "•"), p.paint(lipgloss.NewStyle().Bold(true), t.Name), p.paint(styleMuted, t.Description))
		p.printf("  Category: %s\n", p.paint(styleSuccess, t.Category.DisplayName()))
		p.printf("  Technologies: %s\n", p.paint(styleWarn, strings.Join(t.Technologies, ", ")))
		p.printf("  Features: %s\n", p.paint(styleMuted, strings.Join(t.Features, ", ")))
		p.println()
	}
}

func (p *printer) generation(res *scaffold.Result) {
	if res.Success {
		p.println(p.paint(styleSuccess.Bold(true), "🎉 Project created successfully!"))
		p.printf("📁 Project location: %s\n", p.paint(styleAccent, res.ProjectPath))
		p.println("📄 Files created:")
		for _, line := range res.Lines() {
			p.printf("  %s\n", line)
		}
	} else {
		p.println(p.paint(styleError.Bold(true), "❌ Project creation failed!"))
		if res.Partial() {
			p.println("Created before the failure (nothing was removed):")
			for _, line := range res.Lines() {
				p.printf("  %s\n", line)
			}
		} else {
			p.println("Nothing was created.")
		}
		p.println("Errors:")
		for _, e := range res.Errors {
			p.printf("  %s\n", p.paint(styleError, e))
		}
	}

	if len(res.Warnings) > 0 {
		p.println()
		p.println("⚠️ Warnings:")
		for _, w := range res.Warnings {
			p.printf("  %s\n", p.paint(styleWarn, w))
		}
	}
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format config.OutputFormat, v any) error {
	switch format {
	case config.FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidOutputFormat, format)
	}
}

// outputFormat picks the format from an explicit flag value, then --json,
// then the configured default.
func outputFormat(flag string, asJSON bool) (config.OutputFormat, error) {
	if flag != "" {
		return config.ParseOutputFormat(flag)
	}
	if asJSON {
		return config.FormatJSON, nil
	}
	if appConfig != nil {
		return appConfig.Settings.OutputFormat, nil
	}
	return config.FormatText, nil
}
