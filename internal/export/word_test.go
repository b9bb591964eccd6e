package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// docx files are zip archives; checking the magic bytes is enough to know a
// package was produced without unpacking the XML.
func assertZipMagic(t *testing.T, data []byte) {
	t.Helper()
	require.True(t, len(data) > 4)
	assert.Equal(t, []byte{'P', 'K', 0x03, 0x04}, data[:4])
}

func TestWordRecordsDocument(t *testing.T) {
	enc, err := newWordEncoder()
	require.NoError(t, err)

	payload := NewRecords([]*Record{
		NewRecord().Set("name", "Espresso").Set("price", 2.5),
		NewRecord().Set("name", "Latte").Set("price", 3.75),
	}).WithTitle("Inventory")

	data, err := enc.Encode(payload)
	require.NoError(t, err)
	assertZipMagic(t, data)
}

func TestWordKeyValueDocument(t *testing.T) {
	enc, err := newWordEncoder()
	require.NoError(t, err)

	payload := NewKeyValue(NewRecord().Set("Total Sales", "199.90").Set("Orders", 17))

	data, err := enc.Encode(payload)
	require.NoError(t, err)
	assertZipMagic(t, data)
}

func TestWordEmptyRecordsFails(t *testing.T) {
	enc, err := newWordEncoder()
	require.NoError(t, err)

	_, err = enc.Encode(NewRecords(nil))
	assert.ErrorIs(t, err, ErrEmptyRecordSet)
}
