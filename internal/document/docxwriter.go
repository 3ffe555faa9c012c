package document

import (
	"fmt"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/political-party-kit/partykit/internal/meeting"
)

const (
	fontName = "Calibri"
	bodySize = 11

	styleListBullet = "ListBullet"
	styleListNumber = "ListNumber"

	justifyCenter = "center"
	justifyRight  = "right"
)

// Build lays out the minutes and saves them as a .docx file at path.
func Build(text, path string, meta meeting.Metadata, now time.Time) error {
	return Write(Layout(text, meta, now), path)
}

// Write renders blocks into a new document and saves it to path.
func Write(blocks []Block, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	for _, b := range blocks {
		p := doc.AddParagraph("")

		switch b.Kind {
		case Bullet:
			p.Style(styleListBullet)
		case Numbered:
			p.Style(styleListNumber)
		}

		switch b.Align {
		case AlignCenter:
			p.Justification(justifyCenter)
		case AlignRight:
			p.Justification(justifyRight)
		}

		if b.Text != "" {
			addRun(p, b)
		}
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func addRun(p *docx.Paragraph, b Block) {
	size := b.Size
	if size == 0 {
		size = bodySize
	}
	run := p.AddText(b.Text).Font(fontName).Size(size).Color("000000")
	if b.Bold {
		run.Bold(true)
	}
}
