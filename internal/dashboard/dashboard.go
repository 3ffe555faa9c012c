// Package dashboard renders the static HTML overview of the toolkit modules.
package dashboard

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/political-party-kit/partykit/internal/config"
)

// PageTitle is shown in the browser tab and as the page heading.
const PageTitle = "Political Party Kit"

//go:embed dashboard.html.tmpl
var pageTemplate string

var page = template.Must(template.New("dashboard").Parse(pageTemplate))

// ModuleEntry describes one toolkit module shown on the dashboard.
type ModuleEntry struct {
	Name          string
	Description   string
	Command       string
	Documentation string
}

// DefaultModules returns the modules that ship with the toolkit.
func DefaultModules() []ModuleEntry {
	return []ModuleEntry{
		{
			Name:          "Sitzungsprotokolle",
			Description:   "Erstellt aus Audioaufnahmen automatisch strukturierte Sitzungsprotokolle mithilfe von Whisper und GPT.",
			Command:       "partykit minutes --audio sitzung.m4a",
			Documentation: "README.md#meeting-minutes-module",
		},
	}
}

// FromConfig returns the default modules followed by those registered in cfg.
func FromConfig(cfg config.DashboardConfig) []ModuleEntry {
	modules := DefaultModules()
	for _, m := range cfg.Modules {
		modules = append(modules, ModuleEntry{
			Name:          m.Name,
			Description:   m.Description,
			Command:       m.Command,
			Documentation: m.Documentation,
		})
	}
	return modules
}

type card struct {
	Name          string
	Description   template.HTML
	Command       string
	Documentation string
}

type pageData struct {
	Title string
	Cards []card
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))

// Render returns the dashboard page with one card per module. An empty list
// renders the default modules.
func Render(modules []ModuleEntry) (string, error) {
	if len(modules) == 0 {
		modules = DefaultModules()
	}

	data := pageData{Title: PageTitle, Cards: make([]card, 0, len(modules))}
	for _, m := range modules {
		desc, err := renderDescription(m.Description)
		if err != nil {
			return "", fmt.Errorf("render description of %q: %w", m.Name, err)
		}
		data.Cards = append(data.Cards, card{
			Name:          m.Name,
			Description:   desc,
			Command:       m.Command,
			Documentation: strings.TrimSpace(m.Documentation),
		})
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

// renderDescription converts Markdown to HTML. Raw HTML in the source is
// dropped by goldmark's default renderer.
func renderDescription(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(strings.TrimSpace(buf.String())), nil
}

// Write renders the dashboard into path and returns its absolute location.
func Write(path string, modules []ModuleEntry) (string, error) {
	target, err := expandPath(path)
	if err != nil {
		return "", err
	}

	html, err := Render(modules)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(target); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(target, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("write dashboard: %w", err)
	}
	return target, nil
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	return abs, nil
}
