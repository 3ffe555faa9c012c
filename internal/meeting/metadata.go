// Package meeting holds the descriptive record of a session that is attached
// to generated minutes.
package meeting

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultTitle is used whenever a session has no title.
const DefaultTitle = "Sitzungsprotokoll"

// Metadata describes a session. Lists hold trimmed, non-empty entries.
type Metadata struct {
	Title        string   `yaml:"title"`
	Date         string   `yaml:"date"`
	Location     string   `yaml:"location"`
	StartTime    string   `yaml:"start_time"`
	EndTime      string   `yaml:"end_time"`
	Moderator    string   `yaml:"moderator"`
	MinuteTaker  string   `yaml:"minute_taker"`
	Participants []string `yaml:"participants"`
	Guests       []string `yaml:"guests"`
	Agenda       []string `yaml:"agenda"`
	Goals        []string `yaml:"goals"`
	Notes        []string `yaml:"notes"`
}

// New returns metadata with the default title.
func New() Metadata {
	return Metadata{Title: DefaultTitle}
}

// LoadFile reads metadata from a YAML file using the same keys as ToMap.
func LoadFile(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read metadata: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Metadata{}, fmt.Errorf("parse metadata: %w", err)
	}
	return FromMap(raw), nil
}

// Clone returns a deep copy so interactive edits never touch the original lists.
func (m Metadata) Clone() Metadata {
	c := m
	c.Participants = cloneList(m.Participants)
	c.Guests = cloneList(m.Guests)
	c.Agenda = cloneList(m.Agenda)
	c.Goals = cloneList(m.Goals)
	c.Notes = cloneList(m.Notes)
	return c
}

// TimeSlot joins start and end time with " - ", skipping empty values.
func (m Metadata) TimeSlot() string {
	var parts []string
	for _, v := range []string{m.StartTime, m.EndTime} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " - ")
}

// PromptHeader describes the session for the consolidation prompt.
func (m Metadata) PromptHeader() string {
	var lines []string
	if m.Title != "" {
		lines = append(lines, "Titel: "+m.Title)
	}
	if m.Date != "" {
		lines = append(lines, "Datum: "+m.Date)
	}
	if slot := m.TimeSlot(); slot != "" {
		lines = append(lines, "Zeitfenster: "+slot)
	}
	if m.Location != "" {
		lines = append(lines, "Ort: "+m.Location)
	}
	if m.Moderator != "" {
		lines = append(lines, "Moderation: "+m.Moderator)
	}
	if m.MinuteTaker != "" {
		lines = append(lines, "Protokollführung: "+m.MinuteTaker)
	}
	if len(m.Participants) > 0 {
		lines = append(lines, "Teilnehmer: "+HumanJoin(m.Participants))
	}
	if len(m.Guests) > 0 {
		lines = append(lines, "Gäste: "+HumanJoin(m.Guests))
	}
	lines = appendBlock(lines, "Ziele:", m.Goals)
	lines = appendBlock(lines, "Tagesordnung:", m.Agenda)
	lines = appendBlock(lines, "Hinweise:", m.Notes)
	return strings.Join(lines, "\n")
}

// HeaderFields returns the entries shown below the document title.
func (m Metadata) HeaderFields() []string {
	var entries []string
	if m.Date != "" {
		entries = append(entries, "Datum: "+m.Date)
	}
	if slot := m.TimeSlot(); slot != "" {
		entries = append(entries, "Zeitfenster: "+slot)
	}
	if m.Location != "" {
		entries = append(entries, "Ort: "+m.Location)
	}
	if m.Moderator != "" {
		entries = append(entries, "Moderation: "+m.Moderator)
	}
	if m.MinuteTaker != "" {
		entries = append(entries, "Protokoll: "+m.MinuteTaker)
	}
	if len(m.Participants) > 0 {
		entries = append(entries, "Teilnehmer: "+HumanJoin(m.Participants))
	}
	if len(m.Guests) > 0 {
		entries = append(entries, "Gäste: "+HumanJoin(m.Guests))
	}
	return entries
}

// ToMap returns a plain dictionary representation of the metadata.
func (m Metadata) ToMap() map[string]any {
	return map[string]any{
		"title":        m.Title,
		"date":         m.Date,
		"location":     m.Location,
		"start_time":   m.StartTime,
		"end_time":     m.EndTime,
		"moderator":    m.Moderator,
		"minute_taker": m.MinuteTaker,
		"participants": cloneList(m.Participants),
		"guests":       cloneList(m.Guests),
		"agenda":       cloneList(m.Agenda),
		"goals":        cloneList(m.Goals),
		"notes":        cloneList(m.Notes),
	}
}

// FromMap builds metadata from a dictionary as produced by ToMap or decoded
// from YAML/JSON. A missing title falls back to DefaultTitle.
func FromMap(payload map[string]any) Metadata {
	title := stringValue(payload["title"])
	if _, ok := payload["title"]; !ok {
		title = DefaultTitle
	}
	return Metadata{
		Title:        title,
		Date:         stringValue(payload["date"]),
		Location:     stringValue(payload["location"]),
		StartTime:    stringValue(payload["start_time"]),
		EndTime:      stringValue(payload["end_time"]),
		Moderator:    stringValue(payload["moderator"]),
		MinuteTaker:  stringValue(payload["minute_taker"]),
		Participants: listValue(payload["participants"]),
		Guests:       listValue(payload["guests"]),
		Agenda:       listValue(payload["agenda"]),
		Goals:        listValue(payload["goals"]),
		Notes:        listValue(payload["notes"]),
	}
}

// HumanJoin trims the items, drops empty ones and joins the rest with ", ".
func HumanJoin(items []string) string {
	return strings.Join(cleanList(items), ", ")
}

// ParseSemicolonList converts "A;B ;;C" into [A B C].
func ParseSemicolonList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return cleanList(strings.Split(value, ";"))
}

func appendBlock(lines []string, label string, items []string) []string {
	if len(items) == 0 {
		return lines
	}
	lines = append(lines, label)
	for _, item := range items {
		lines = append(lines, "  - "+item)
	}
	return lines
}

func cleanList(items []string) []string {
	var out []string
	for _, item := range items {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func cloneList(items []string) []string {
	if items == nil {
		return nil
	}
	return append([]string(nil), items...)
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

func listValue(v any) []string {
	switch items := v.(type) {
	case []string:
		return cleanList(items)
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, stringValue(item))
		}
		return cleanList(out)
	case string:
		return ParseSemicolonList(items)
	default:
		return nil
	}
}
