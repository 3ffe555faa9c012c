package prompt

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/political-party-kit/partykit/internal/meeting"
)

// Collector walks the user through the meeting metadata form.
type Collector struct {
	reader LineReader
	out    io.Writer
	now    func() time.Time
}

// NewCollector creates a Collector reading answers from reader and printing
// hints and the summary to out.
func NewCollector(reader LineReader, out io.Writer) *Collector {
	return &Collector{reader: reader, out: out, now: time.Now}
}

// Collect asks for every field, using the values in meta as defaults, and
// repeats the form until the user confirms the summary.
func (c *Collector) Collect(meta meeting.Metadata) (meeting.Metadata, error) {
	m := meta.Clone()

	for {
		fmt.Fprintln(c.out, "\n=== Eingabemaske für Sitzungsbeginn ===")

		title := m.Title
		if title == "" {
			title = meeting.DefaultTitle
		}
		date := m.Date
		if date == "" {
			date = c.now().Format("2006-01-02")
		}

		scalars := []struct {
			label  string
			target *string
			def    string
		}{
			{"Sitzungstitel", &m.Title, title},
			{"Datum (z. B. 2025-10-01)", &m.Date, date},
			{"Geplanter Beginn (HH:MM)", &m.StartTime, m.StartTime},
			{"Geplantes Ende (HH:MM)", &m.EndTime, m.EndTime},
			{"Ort", &m.Location, m.Location},
			{"Leitung/Moderation", &m.Moderator, m.Moderator},
			{"Protokollführung", &m.MinuteTaker, m.MinuteTaker},
		}
		for _, s := range scalars {
			v, err := c.withDefault(s.label, s.def)
			if err != nil {
				return meeting.Metadata{}, err
			}
			*s.target = v
		}

		lists := []struct {
			label  string
			target *[]string
		}{
			{"Teilnehmer*innen", &m.Participants},
			{"Gäste", &m.Guests},
			{"Tagesordnungspunkte", &m.Agenda},
			{"Sitzungsziele", &m.Goals},
			{"Besondere Hinweise", &m.Notes},
		}
		for _, l := range lists {
			v, err := c.list(l.label, *l.target)
			if err != nil {
				return meeting.Metadata{}, err
			}
			*l.target = v
		}

		c.printSummary(m)

		answer, err := c.reader.ReadLine("\nSind die Angaben korrekt? (J/n): ")
		if err != nil {
			return meeting.Metadata{}, err
		}
		if Confirmed(answer) {
			return m, nil
		}
		fmt.Fprintln(c.out, "\nBitte Eingaben erneut vornehmen.")
	}
}

// Confirmed reports whether answer accepts the summary. An empty answer counts
// as yes.
func Confirmed(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "j", "ja", "y", "yes":
		return true
	}
	return false
}

func (c *Collector) withDefault(label, def string) (string, error) {
	prompt := label + ": "
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, def)
	}
	v, err := c.reader.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	if v = strings.TrimSpace(v); v != "" {
		return v, nil
	}
	return def, nil
}

func (c *Collector) list(label string, current []string) ([]string, error) {
	fmt.Fprintf(c.out, "%s:\n", label)
	if len(current) > 0 {
		fmt.Fprintln(c.out, "  (Aktuell hinterlegt:)")
		for i, item := range current {
			fmt.Fprintf(c.out, "    %d. %s\n", i+1, item)
		}
	}
	fmt.Fprintln(c.out, "  Pro Zeile ein Eintrag. Leere Zeile beendet die Eingabe und übernimmt ggf. bestehende Werte.")

	var entries []string
	for {
		v, err := c.reader.ReadLine(fmt.Sprintf("    %d. ", len(entries)+1))
		if err != nil {
			return nil, err
		}
		v = strings.TrimSpace(v)
		if v == "" {
			break
		}
		entries = append(entries, v)
	}
	if len(entries) == 0 {
		return current, nil
	}
	return entries, nil
}

func (c *Collector) printSummary(m meeting.Metadata) {
	fmt.Fprintln(c.out, "\nZusammenfassung der Angaben:")
	fmt.Fprintf(c.out, "  Titel: %s\n", m.Title)
	fmt.Fprintf(c.out, "  Datum: %s\n", m.Date)
	fmt.Fprintf(c.out, "  Zeitfenster: %s\n", m.TimeSlot())
	fmt.Fprintf(c.out, "  Ort: %s\n", m.Location)
	fmt.Fprintf(c.out, "  Moderation: %s\n", m.Moderator)
	fmt.Fprintf(c.out, "  Protokollführung: %s\n", m.MinuteTaker)
	fmt.Fprintf(c.out, "  Teilnehmer*innen: %s\n", meeting.HumanJoin(m.Participants))
	fmt.Fprintf(c.out, "  Gäste: %s\n", meeting.HumanJoin(m.Guests))
	fmt.Fprintf(c.out, "  Ziele: %s\n", meeting.HumanJoin(m.Goals))
	fmt.Fprintf(c.out, "  Hinweise: %s\n", meeting.HumanJoin(m.Notes))
	if len(m.Agenda) > 0 {
		fmt.Fprintln(c.out, "  Tagesordnung:")
		for i, item := range m.Agenda {
			fmt.Fprintf(c.out, "    %d. %s\n", i+1, item)
		}
	}
}
