package cli

import (
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/political-party-kit/partykit/internal/logger"
	"github.com/political-party-kit/partykit/internal/meeting"
	"github.com/political-party-kit/partykit/internal/minutes"
	"github.com/political-party-kit/partykit/internal/output"
	"github.com/political-party-kit/partykit/internal/prompt"
)

type minutesFlags struct {
	audio          string
	metaFile       string
	title          string
	date           string
	location       string
	moderator      string
	minuteTaker    string
	start          string
	end            string
	participants   string
	guests         string
	agenda         string
	goals          string
	notes          string
	language       string
	out            string
	saveTranscript string
	savePartials   string
	noPrompt       bool
}

func NewMinutesCmd(deps *Dependencies) *cobra.Command {
	var f minutesFlags

	cmd := &cobra.Command{
		Use:   "minutes",
		Short: "Sitzungsprotokoll aus einer Audioaufnahme erstellen",
		Long: "Transkribiert eine Aufnahme, fasst sie abschnittsweise zusammen und schreibt ein formatiertes Word-Protokoll.\n" +
			"Listen (Teilnehmer, Tagesordnung, ...) werden mit Semikolon getrennt.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.App.Config
			formatter := output.NewFormatter(deps.Stdout)

			meta, err := f.metadata()
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()
			ctx = logger.WithRunID(ctx, uuid.NewString())

			opts := minutes.Options{Progress: formatter.Progress}
			if !f.noPrompt {
				c := newClosingCollector(prompt.NewLineReader(deps.Stdin, deps.Stdout), deps.Stdout)
				defer c.close()
				opts.Collector = c
			}

			gen, err := deps.App.Minutes(ctx, opts)
			if err != nil {
				return err
			}

			req := minutes.Request{
				AudioPath:      f.audio,
				OutputPath:     firstNonEmpty(f.out, cfg.Minutes.Output),
				Language:       firstNonEmpty(f.language, cfg.Minutes.Language),
				Metadata:       meta,
				Prompt:         !f.noPrompt,
				TranscriptPath: f.saveTranscript,
				PartialsDir:    f.savePartials,
			}

			start := time.Now()
			path, err := gen.Generate(ctx, req)
			if err != nil {
				return err
			}
			formatter.MinutesDone(path, time.Since(start))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.audio, "audio", "", "Pfad zur Audiodatei (mp3, m4a, wav, ...)")
	fl.StringVar(&f.metaFile, "meta", "", "YAML-Datei mit Sitzungsangaben; Flags überschreiben einzelne Werte")
	fl.StringVar(&f.title, "title", "", "Titel der Sitzung (Standard: "+meeting.DefaultTitle+")")
	fl.StringVar(&f.date, "date", "", "Datum der Sitzung, z. B. 2025-10-01")
	fl.StringVar(&f.location, "location", "", "Ort der Sitzung")
	fl.StringVar(&f.moderator, "moderator", "", "Leitung/Moderation")
	fl.StringVar(&f.minuteTaker, "minute-taker", "", "Protokollführung")
	fl.StringVar(&f.start, "start", "", "Beginn (HH:MM)")
	fl.StringVar(&f.end, "end", "", "Ende (HH:MM)")
	fl.StringVar(&f.participants, "participants", "", "Teilnehmer*innen, mit ';' getrennt")
	fl.StringVar(&f.guests, "guests", "", "Gäste, mit ';' getrennt")
	fl.StringVar(&f.agenda, "agenda", "", "Tagesordnungspunkte, mit ';' getrennt")
	fl.StringVar(&f.goals, "goals", "", "Sitzungsziele, mit ';' getrennt")
	fl.StringVar(&f.notes, "notes", "", "Besondere Hinweise, mit ';' getrennt")
	fl.StringVar(&f.language, "language", "", "Sprachhinweis für die Transkription (Standard aus der Konfiguration: de)")
	fl.StringVar(&f.out, "out", "", "Zieldatei (Standard aus der Konfiguration: Protokoll.docx)")
	fl.StringVar(&f.saveTranscript, "save-transcript", "", "Rohtranskript zusätzlich in diese Datei schreiben")
	fl.StringVar(&f.savePartials, "save-partials", "", "Teilzusammenfassungen als teil_NN.md in dieses Verzeichnis schreiben")
	fl.BoolVar(&f.noPrompt, "no-prompt", false, "Keine interaktive Eingabemaske anzeigen")
	_ = cmd.MarkFlagRequired("audio")

	return cmd
}

// metadata starts from the --meta file (or empty metadata) and applies every
// flag that carries a value.
func (f minutesFlags) metadata() (meeting.Metadata, error) {
	meta := meeting.New()
	if f.metaFile != "" {
		loaded, err := meeting.LoadFile(f.metaFile)
		if err != nil {
			return meeting.Metadata{}, err
		}
		meta = loaded
	}

	scalars := []struct {
		value  string
		target *string
	}{
		{f.title, &meta.Title},
		{f.date, &meta.Date},
		{f.location, &meta.Location},
		{f.moderator, &meta.Moderator},
		{f.minuteTaker, &meta.MinuteTaker},
		{f.start, &meta.StartTime},
		{f.end, &meta.EndTime},
	}
	for _, s := range scalars {
		if s.value != "" {
			*s.target = s.value
		}
	}

	lists := []struct {
		value  string
		target *[]string
	}{
		{f.participants, &meta.Participants},
		{f.guests, &meta.Guests},
		{f.agenda, &meta.Agenda},
		{f.goals, &meta.Goals},
		{f.notes, &meta.Notes},
	}
	for _, l := range lists {
		if items := meeting.ParseSemicolonList(l.value); len(items) > 0 {
			*l.target = items
		}
	}

	return meta, nil
}

// closingCollector releases the terminal as soon as the form is done, so
// echo and line mode are back before the long transcription starts.
type closingCollector struct {
	collector *prompt.Collector
	reader    prompt.LineReader
	once      sync.Once
}

func newClosingCollector(reader prompt.LineReader, out io.Writer) *closingCollector {
	return &closingCollector{collector: prompt.NewCollector(reader, out), reader: reader}
}

func (c *closingCollector) Collect(meta meeting.Metadata) (meeting.Metadata, error) {
	defer c.close()
	return c.collector.Collect(meta)
}

func (c *closingCollector) close() {
	c.once.Do(func() {
		_ = c.reader.Close()
	})
}
