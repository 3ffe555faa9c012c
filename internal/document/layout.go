// Package document turns consolidated minutes into a formatted Word document.
//
// Layout turns text and metadata into plain Blocks; Write renders blocks with
// godocx.
package document

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/political-party-kit/partykit/internal/meeting"
)

// Kind selects the paragraph style of a block.
type Kind int

const (
	Paragraph Kind = iota
	Bullet
	Numbered
)

// Align is the horizontal alignment of a block.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

const (
	titleSize     = 20
	headingSize   = 14
	sectionSize   = 12
	maxLabelRunes = 120
	headerSep     = "  |  "
)

// Block is one paragraph of the output document.
type Block struct {
	Kind  Kind
	Text  string
	Bold  bool
	Size  uint64 // points; 0 keeps the document default
	Align Align
}

// Layout builds the document blocks: title, metadata header, optional agenda,
// goals and notes sections, one block per line of text, and a timestamp footer.
func Layout(text string, meta meeting.Metadata, now time.Time) []Block {
	title := meta.Title
	if title == "" {
		title = meeting.DefaultTitle
	}

	blocks := []Block{{Text: title, Bold: true, Size: titleSize, Align: AlignCenter}}
	if fields := meta.HeaderFields(); len(fields) > 0 {
		blocks = append(blocks, Block{Text: strings.Join(fields, headerSep), Align: AlignCenter})
	}
	blocks = append(blocks, Block{})

	blocks = appendSection(blocks, "Tagesordnung", meta.Agenda, Numbered)
	blocks = appendSection(blocks, "Sitzungsziele", meta.Goals, Bullet)
	blocks = appendSection(blocks, "Besondere Hinweise", meta.Notes, Bullet)

	blocks = append(blocks, BodyBlocks(text)...)

	blocks = append(blocks,
		Block{},
		Block{Text: "Erstellt am " + now.Format("2006-01-02 15:04"), Align: AlignRight},
	)
	return blocks
}

// BodyBlocks formats each line of the minutes as exactly one block.
func BodyBlocks(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, lineBlock(line))
	}
	return blocks
}

func lineBlock(line string) Block {
	stripped := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(stripped, "#"):
		level := len(stripped) - len(strings.TrimLeft(stripped, "#"))
		size := uint64(sectionSize)
		if level == 1 {
			size = headingSize
		}
		return Block{Text: strings.TrimSpace(strings.TrimLeft(stripped, "#")), Bold: true, Size: size}

	case strings.HasSuffix(stripped, ":") && utf8.RuneCountInString(stripped) < maxLabelRunes:
		return Block{Text: stripped, Bold: true}

	case strings.HasPrefix(stripped, "-"), strings.HasPrefix(stripped, "*"), strings.HasPrefix(stripped, "•"):
		return Block{Kind: Bullet, Text: strings.TrimSpace(strings.TrimLeft(stripped, "-*• "))}

	default:
		return Block{Text: line}
	}
}

func appendSection(blocks []Block, heading string, items []string, kind Kind) []Block {
	if len(items) == 0 {
		return blocks
	}
	blocks = append(blocks, Block{Text: heading, Bold: true, Size: sectionSize})
	for _, item := range items {
		blocks = append(blocks, Block{Kind: kind, Text: item})
	}
	return append(blocks, Block{})
}
