package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// Fixed layout: no column-width-to-content fitting, columns divide the usable
// page width evenly.
const (
	pdfLeftMargin   = 20.0
	pdfLineHeight   = 7.0
	pdfBottomMargin = 20.0
	pdfTopMargin    = 20.0
)

// pdfEncoder renders a paginated document: title, generation date, then either
// a positional table or key: value lines.
type pdfEncoder struct {
	now func() time.Time
}

func newPDFEncoder() (Encoder, error) {
	return &pdfEncoder{now: time.Now}, nil
}

func (e *pdfEncoder) Encode(payload Payload) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	pageWidth, pageHeight := doc.GetPageSize()

	y := pdfTopMargin
	doc.SetFont("Helvetica", "B", 14)
	doc.Text(pdfLeftMargin, y, payload.Title())
	y += pdfLineHeight

	doc.SetFont("Helvetica", "", 9)
	doc.Text(pdfLeftMargin, y, "Generated: "+e.now().Format("2006-01-02 15:04"))
	y += pdfLineHeight * 2

	newLine := func() {
		y += pdfLineHeight
		if y > pageHeight-pdfBottomMargin {
			doc.AddPage()
			y = pdfTopMargin
		}
	}

	if payload.Kind() == KindKeyValue {
		doc.SetFont("Helvetica", "", 10)
		pairs := payload.Pairs()
		if pairs != nil {
			for _, k := range pairs.Keys() {
				v, _ := pairs.Get(k)
				doc.Text(pdfLeftMargin, y, fmt.Sprintf("%s: %s", k, scalarString(v)))
				newLine()
			}
		}
	} else {
		records := payload.Records()
		if len(records) == 0 {
			return nil, ErrEmptyRecordSet
		}

		fields := records[0].Keys()
		colWidth := (pageWidth - 2*pdfLeftMargin) / float64(len(fields))

		doc.SetFont("Helvetica", "B", 10)
		for i, field := range fields {
			doc.Text(pdfLeftMargin+float64(i)*colWidth, y, field)
		}
		newLine()

		doc.SetFont("Helvetica", "", 9)
		for _, record := range records {
			for i, field := range fields {
				v, _ := record.Get(field)
				doc.Text(pdfLeftMargin+float64(i)*colWidth, y, scalarString(v))
			}
			newLine()
		}
	}

	if doc.Err() {
		return nil, fmt.Errorf("rendering pdf: %w", doc.Error())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("serializing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *pdfEncoder) Extension() string {
	return FormatPDF.Extension()
}

func (e *pdfEncoder) MIMEType() string {
	return FormatPDF.MIMEType()
}
