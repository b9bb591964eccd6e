package export

import "fmt"

// Format identifies one of the supported output formats.
type Format string

const (
	// FormatJSON is pretty-printed JSON.
	FormatJSON Format = "json"
	// FormatCSV is RFC4180-style comma-separated text.
	FormatCSV Format = "csv"
	// FormatExcel is a single-sheet xlsx workbook.
	FormatExcel Format = "excel"
	// FormatPDF is a paginated PDF document.
	FormatPDF Format = "pdf"
	// FormatWord is an Open XML docx document.
	FormatWord Format = "word"
)

// Formats returns all supported formats in presentation order.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatExcel, FormatPDF, FormatWord}
}

// ParseFormat validates a format tag.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// Valid reports whether the format is one of the supported five.
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatCSV, FormatExcel, FormatPDF, FormatWord:
		return true
	}
	return false
}

// Extension returns the target file extension, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatCSV:
		return ".csv"
	case FormatExcel:
		return ".xlsx"
	case FormatPDF:
		return ".pdf"
	case FormatWord:
		return ".docx"
	}
	return ""
}

// MIMEType returns the MIME type of the produced file.
func (f Format) MIMEType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv"
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	case FormatWord:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/octet-stream"
}

// guarded reports whether the format's encoder failures are swallowed and
// surfaced as a user notification instead of an error return. The document
// formats never propagate; json and csv stay caller-visible.
func (f Format) guarded() bool {
	switch f {
	case FormatExcel, FormatPDF, FormatWord:
		return true
	}
	return false
}
