package export

import (
	"bytes"
	"fmt"
	"time"

	docx "github.com/fumiama/go-docx"
)

// Table width in twips; columns share it equally.
const wordTableWidth = 8306

// wordEncoder builds an Open XML document: bold title, generation date, then
// either a table with a bold header row or bold-key/plain-value paragraphs.
type wordEncoder struct {
	now func() time.Time
}

func newWordEncoder() (Encoder, error) {
	return &wordEncoder{now: time.Now}, nil
}

func (e *wordEncoder) Encode(payload Payload) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().AddText(payload.Title()).Size("28").Bold()
	doc.AddParagraph().AddText("Generated: " + e.now().Format("2006-01-02 15:04"))

	if payload.Kind() == KindKeyValue {
		pairs := payload.Pairs()
		if pairs != nil {
			for _, k := range pairs.Keys() {
				v, _ := pairs.Get(k)
				para := doc.AddParagraph()
				para.AddText(k + ": ").Bold()
				para.AddText(scalarString(v))
			}
		}
	} else {
		records := payload.Records()
		if len(records) == 0 {
			return nil, ErrEmptyRecordSet
		}

		fields := records[0].Keys()
		table := doc.AddTable(len(records)+1, len(fields), wordTableWidth, nil)

		for i, field := range fields {
			table.TableRows[0].TableCells[i].AddParagraph().AddText(field).Bold()
		}
		for r, record := range records {
			for c, field := range fields {
				v, _ := record.Get(field)
				table.TableRows[r+1].TableCells[c].AddParagraph().AddText(scalarString(v))
			}
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serializing docx: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *wordEncoder) Extension() string {
	return FormatWord.Extension()
}

func (e *wordEncoder) MIMEType() string {
	return FormatWord.MIMEType()
}
