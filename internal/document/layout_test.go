package document

import (
	"archive/zip"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/political-party-kit/partykit/internal/meeting"
)

var fixedNow = time.Date(2025, 10, 1, 14, 5, 0, 0, time.UTC)

func TestBodyBlocks(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Block
	}{
		{"level one heading", "# Beschlüsse", Block{Text: "Beschlüsse", Bold: true, Size: headingSize}},
		{"level two heading", "## Diskussion", Block{Text: "Diskussion", Bold: true, Size: sectionSize}},
		{"label", "  Offene Punkte:", Block{Text: "Offene Punkte:", Bold: true}},
		{"dash bullet", "- Budget angenommen", Block{Kind: Bullet, Text: "Budget angenommen"}},
		{"star bullet", "* Termin verschoben", Block{Kind: Bullet, Text: "Termin verschoben"}},
		{"dot bullet", "• Presse informieren", Block{Kind: Bullet, Text: "Presse informieren"}},
		{"plain keeps line", "  Der Vorstand tagt.", Block{Text: "  Der Vorstand tagt."}},
		{"empty", "", Block{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BodyBlocks(tt.line)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestBodyBlocksLongColonLineIsPlain(t *testing.T) {
	line := strings.Repeat("ä", maxLabelRunes) + ":"
	got := BodyBlocks(line)
	require.Len(t, got, 1)
	assert.False(t, got[0].Bold)
	assert.Equal(t, line, got[0].Text)
}

func TestBodyBlocksOnePerLine(t *testing.T) {
	text := "# Protokoll\n\nTeilnehmer:\n- Müller\n- Yılmaz\nFreitext"
	got := BodyBlocks(text)
	assert.Len(t, got, 6)

	for _, b := range got {
		isHeadingOrLabel := strings.HasSuffix(b.Text, ":") || b.Size > 0
		assert.Equal(t, isHeadingOrLabel, b.Bold, "block %q", b.Text)
	}
}

func TestLayout(t *testing.T) {
	meta := meeting.Metadata{
		Title:     "Vorstandssitzung",
		Date:      "2025-10-01",
		Location:  "Parteibüro",
		Moderator: "Müller",
		Agenda:    []string{"Haushalt", "Wahlkampf"},
		Notes:     []string{"Aufzeichnung"},
	}

	got := Layout("# Ergebnisse\n- Haushalt beschlossen", meta, fixedNow)

	want := []Block{
		{Text: "Vorstandssitzung", Bold: true, Size: titleSize, Align: AlignCenter},
		{Text: "Datum: 2025-10-01  |  Ort: Parteibüro  |  Moderation: Müller", Align: AlignCenter},
		{},
		{Text: "Tagesordnung", Bold: true, Size: sectionSize},
		{Kind: Numbered, Text: "Haushalt"},
		{Kind: Numbered, Text: "Wahlkampf"},
		{},
		{Text: "Besondere Hinweise", Bold: true, Size: sectionSize},
		{Kind: Bullet, Text: "Aufzeichnung"},
		{},
		{Text: "Ergebnisse", Bold: true, Size: headingSize},
		{Kind: Bullet, Text: "Haushalt beschlossen"},
		{},
		{Text: "Erstellt am 2025-10-01 14:05", Align: AlignRight},
	}
	assert.Equal(t, want, got)
}

func TestLayoutDefaultTitleAndNoHeader(t *testing.T) {
	got := Layout("Text", meeting.Metadata{}, fixedNow)

	require.Len(t, got, 5)
	assert.Equal(t, meeting.DefaultTitle, got[0].Text)
	assert.Equal(t, Block{}, got[1])
	assert.Equal(t, "Text", got[2].Text)
}

func readZipEntry(t *testing.T, r *zip.ReadCloser, name string) string {
	t.Helper()
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("%s missing", name)
	return ""
}

var (
	styleIDPattern = regexp.MustCompile(`w:styleId="([^"]+)"`)
	pStylePattern  = regexp.MustCompile(`<w:pStyle w:val="([^"]+)"`)
	runPattern     = regexp.MustCompile(`(?s)<w:r[ >].*?</w:r>`)
	boldPattern    = regexp.MustCompile(`<w:b[\s/>]`)
)

func TestBuildWritesDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Protokoll.docx")
	meta := meeting.Metadata{Title: "Kreisvorstand", Agenda: []string{"Finanzen"}}

	err := Build("# Beschluss\n- Antrag angenommen\nOffen:", path, meta, fixedNow)
	require.NoError(t, err)

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	body := readZipEntry(t, r, "word/document.xml")
	for _, want := range []string{"Kreisvorstand", "Finanzen", "Antrag angenommen", "Erstellt am 2025-10-01 14:05"} {
		assert.Contains(t, body, want)
	}

	// list paragraphs must reference styles the document defines
	defined := map[string]bool{}
	for _, m := range styleIDPattern.FindAllStringSubmatch(readZipEntry(t, r, "word/styles.xml"), -1) {
		defined[m[1]] = true
	}
	used := map[string]bool{}
	for _, m := range pStylePattern.FindAllStringSubmatch(body, -1) {
		used[m[1]] = true
		assert.True(t, defined[m[1]], "paragraph style %q is not defined in styles.xml", m[1])
	}
	assert.True(t, used[styleListBullet], "bullet line should use %s", styleListBullet)
	assert.True(t, used[styleListNumber], "agenda item should use %s", styleListNumber)

	for _, text := range []string{"Kreisvorstand", "Beschluss", "Offen:"} {
		var run string
		for _, candidate := range runPattern.FindAllString(body, -1) {
			if strings.Contains(candidate, ">"+text+"<") {
				run = candidate
				break
			}
		}
		if assert.NotEmpty(t, run, "no run for %q", text) {
			assert.Regexp(t, boldPattern, run, "run %q should be bold", text)
		}
	}
}
