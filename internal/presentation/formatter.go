// Package presentation formats command output as JSON, YAML, or a text table.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/storybook/internal/vortex"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json, or yaml. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
	}
}

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	format Format
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer, format Format) *Formatter {
	return &Formatter{
		writer: writer,
		format: format,
	}
}

// FormatPlacements writes a vortex layout.
func (f *Formatter) FormatPlacements(placements []vortex.Placement) error {
	if placements == nil {
		placements = []vortex.Placement{}
	}
	return f.encode(placements, func() string {
		rows := make([][]string, 0, len(placements))
		for _, p := range placements {
			rows = append(rows, []string{
				strconv.Itoa(p.Tendril),
				strconv.Itoa(p.Index),
				p.Char,
				num(p.X),
				num(p.Y),
				num(p.FontSize),
				num(p.Angle),
				num(p.Delay),
				p.Color,
				num(p.Intensity),
			})
		}
		return render([]string{"Tendril", "Index", "Char", "X", "Y", "Size", "Angle", "Delay", "Color", "Intensity"}, rows)
	})
}

// FormatStories writes the story list.
func (f *Formatter) FormatStories(stories []StoryDTO) error {
	return f.encode(stories, func() string {
		rows := make([][]string, 0, len(stories))
		for _, s := range stories {
			rows = append(rows, []string{s.Name, s.Title, s.Author, strconv.Itoa(s.Pages), strconv.Itoa(len(s.Endings))})
		}
		return render([]string{"Name", "Title", "Author", "Pages", "Endings"}, rows)
	})
}

// FormatIssues writes lint results. Text output is one line per issue.
func (f *Formatter) FormatIssues(issues []IssueDTO) error {
	return f.encode(issues, func() string {
		if len(issues) == 0 {
			return "No issues found.\n"
		}
		var b strings.Builder
		for _, i := range issues {
			fmt.Fprintf(&b, "page %d: %s: %s\n", i.Page, i.Kind, i.Message)
		}
		return b.String()
	})
}

func (f *Formatter) encode(v any, text func() string) error {
	switch f.format {
	case FormatJSON:
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case FormatYAML:
		encoder := yaml.NewEncoder(f.writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		_, err := io.WriteString(f.writer, text())
		return err
	}
}

func render(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render() + "\n"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
