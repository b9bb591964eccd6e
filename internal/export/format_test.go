package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "json", input: "json", want: FormatJSON},
		{name: "csv", input: "csv", want: FormatCSV},
		{name: "excel", input: "excel", want: FormatExcel},
		{name: "pdf", input: "pdf", want: FormatPDF},
		{name: "word", input: "word", want: FormatWord},
		{name: "unknown", input: "unsupported-format", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "extension not tag", input: "xlsx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatExtensionAndMIME(t *testing.T) {
	tests := []struct {
		format    Format
		extension string
		mimeType  string
	}{
		{FormatJSON, ".json", "application/json"},
		{FormatCSV, ".csv", "text/csv"},
		{FormatExcel, ".xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{FormatPDF, ".pdf", "application/pdf"},
		{FormatWord, ".docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.extension, tt.format.Extension())
			assert.Equal(t, tt.mimeType, tt.format.MIMEType())
		})
	}
}

func TestFormatGuarding(t *testing.T) {
	assert.False(t, FormatJSON.guarded())
	assert.False(t, FormatCSV.guarded())
	assert.True(t, FormatExcel.guarded())
	assert.True(t, FormatPDF.guarded())
	assert.True(t, FormatWord.guarded())
}
