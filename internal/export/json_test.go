package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	enc, err := newJSONEncoder()
	require.NoError(t, err)

	payload := NewRecords([]*Record{
		NewRecord().Set("name", "Espresso").Set("price", 2.5).Set("stock", float64(12)),
		NewRecord().Set("name", "Latte").Set("price", 3.75).Set("stock", float64(8)),
	})

	data, err := enc.Encode(payload)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	want := []map[string]any{
		{"name": "Espresso", "price": 2.5, "stock": float64(12)},
		{"name": "Latte", "price": 3.75, "stock": float64(8)},
	}
	assert.Equal(t, want, decoded)
}

func TestJSONIndentation(t *testing.T) {
	enc, err := newJSONEncoder()
	require.NoError(t, err)

	data, err := enc.Encode(NewKeyValue(NewRecord().Set("total", 10)))
	require.NoError(t, err)

	// 2-space indent, key order preserved.
	assert.Equal(t, "{\n  \"total\": 10\n}", string(data))
}

func TestJSONEmptyRecordsProducesEmptyArray(t *testing.T) {
	enc, err := newJSONEncoder()
	require.NoError(t, err)

	data, err := enc.Encode(NewRecords(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestJSONNonSerializableValueFails(t *testing.T) {
	enc, err := newJSONEncoder()
	require.NoError(t, err)

	payload := NewRecords([]*Record{
		NewRecord().Set("bad", make(chan int)),
	})

	_, err = enc.Encode(payload)
	assert.Error(t, err)
}
