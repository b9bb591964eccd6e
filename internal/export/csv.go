package export

import (
	"bytes"
	"strings"
)

// csvEncoder emits comma-separated text with \n line endings. Cells are quoted
// only when they contain a comma or a double quote, with embedded quotes
// doubled. encoding/csv is not used here: it also quotes newlines and \r,
// which would widen the produced-file contract.
type csvEncoder struct{}

func newCSVEncoder() (Encoder, error) {
	return csvEncoder{}, nil
}

func (csvEncoder) Encode(payload Payload) ([]byte, error) {
	var buf bytes.Buffer

	if payload.Kind() == KindKeyValue {
		pairs := payload.Pairs()
		buf.WriteString("Key,Value\n")
		if pairs == nil {
			return buf.Bytes(), nil
		}
		for _, k := range pairs.Keys() {
			v, _ := pairs.Get(k)
			buf.WriteString(csvCell(k))
			buf.WriteByte(',')
			buf.WriteString(csvCell(scalarString(v)))
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil
	}

	records := payload.Records()
	if len(records) == 0 {
		return nil, ErrNoData
	}

	fields := records[0].Keys()
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(csvCell(field))
	}
	buf.WriteByte('\n')

	for _, record := range records {
		for i, field := range fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if v, ok := record.Get(field); ok {
				buf.WriteString(csvCell(scalarString(v)))
			}
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

func (csvEncoder) Extension() string {
	return FormatCSV.Extension()
}

func (csvEncoder) MIMEType() string {
	return FormatCSV.MIMEType()
}

func csvCell(s string) string {
	if !strings.ContainsAny(s, `,"`) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
