// Package output prints user-facing status lines for the CLI.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type Formatter struct {
	w io.Writer

	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
	warnStyle    lipgloss.Style
	dimStyle     lipgloss.Style
	titleStyle   lipgloss.Style
}

// NewFormatter writes to w. Colors are only emitted when w is a terminal.
func NewFormatter(w io.Writer) *Formatter {
	r := lipgloss.NewRenderer(w)
	return &Formatter{
		w:            w,
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
		successStyle: r.NewStyle().Foreground(lipgloss.Color("82")),             // Green
		warnStyle:    r.NewStyle().Foreground(lipgloss.Color("220")),            // Yellow
		dimStyle:     r.NewStyle().Foreground(lipgloss.Color("242")),
		titleStyle:   r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true), // Cyan
	}
}

func (f *Formatter) Transcribing(audioPath string) {
	fmt.Fprintf(f.w, "📝 Transkribiere %s ...\n", audioPath)
}

func (f *Formatter) Progress(msg string) {
	fmt.Fprintf(f.w, "%s\n", f.dimStyle.Render("… "+msg))
}

func (f *Formatter) MinutesDone(path string, took time.Duration) {
	fmt.Fprintf(f.w, "%s\n", f.successStyle.Render(fmt.Sprintf("✅ Protokoll gespeichert: %s (%s)", path, formatDuration(took))))
}

func (f *Formatter) DashboardDone(path string) {
	fmt.Fprintf(f.w, "%s\n", f.successStyle.Render("✅ Dashboard gespeichert: "+path))
}

func (f *Formatter) Watching(dir string) {
	fmt.Fprintf(f.w, "%s\n", f.titleStyle.Render("👀 Beobachte "+dir+" (Strg+C zum Beenden)"))
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "%s\n", f.errorStyle.Render("❌ "+msg))
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "%s\n", f.successStyle.Render("✅ "+msg))
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "%s\n", f.warnStyle.Render("⚠️  "+msg))
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, f.warnStyle.Render(detail))
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
