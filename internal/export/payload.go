// Package export transforms report payloads into downloadable file formats.
//
// A payload is either an ordered sequence of uniform records or a single flat
// key/value mapping. Each supported format has its own encoder behind a common
// interface; the Dispatcher selects one, encodes, and hands the bytes to a
// FileSink supplied by the host.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is a field-to-scalar mapping that remembers insertion order. Field
// order matters for every output format, so a plain map is not enough.
type Record struct {
	values map[string]any
	keys   []string
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set adds or replaces a field. New fields append to the key order; existing
// fields keep their original position.
func (r *Record) Set(key string, value any) *Record {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

// Get returns a field value and whether the field exists.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	return r.keys
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// MarshalJSON emits the record as a JSON object with fields in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PayloadKind distinguishes the two payload shapes.
type PayloadKind int

const (
	// KindRecords is an ordered sequence of uniform records.
	KindRecords PayloadKind = iota
	// KindKeyValue is a single flat field-to-scalar mapping.
	KindKeyValue
)

// Payload is the data to export: a tagged union of a record sequence and a
// key/value mapping. The zero value is an empty record sequence.
type Payload struct {
	pairs   *Record
	title   string
	records []*Record
	kind    PayloadKind
}

// NewRecords creates a records payload. Encoders discover field names from the
// first record; later records are assumed to share its field set.
func NewRecords(records []*Record) Payload {
	return Payload{kind: KindRecords, records: records}
}

// NewKeyValue creates a key/value payload.
func NewKeyValue(pairs *Record) Payload {
	return Payload{kind: KindKeyValue, pairs: pairs}
}

// WithTitle sets the document title used by the paginated formats.
func (p Payload) WithTitle(title string) Payload {
	p.title = title
	return p
}

// Kind returns the payload shape tag.
func (p Payload) Kind() PayloadKind {
	return p.kind
}

// Records returns the record sequence. Nil for key/value payloads.
func (p Payload) Records() []*Record {
	return p.records
}

// Pairs returns the key/value mapping. Nil for records payloads.
func (p Payload) Pairs() *Record {
	return p.pairs
}

// Title returns the document title, defaulting to "Report".
func (p Payload) Title() string {
	if p.title == "" {
		return "Report"
	}
	return p.title
}

// FieldNames returns the field names the encoders will use: the first record's
// keys for a records payload, the mapping's own keys otherwise.
func (p Payload) FieldNames() []string {
	if p.kind == KindKeyValue {
		if p.pairs == nil {
			return nil
		}
		return p.pairs.Keys()
	}
	if len(p.records) == 0 {
		return nil
	}
	return p.records[0].Keys()
}

// MarshalJSON emits the payload verbatim: an array for records, an object for
// key/value. An empty record sequence serializes as [].
func (p Payload) MarshalJSON() ([]byte, error) {
	if p.kind == KindKeyValue {
		if p.pairs == nil {
			return []byte("{}"), nil
		}
		return p.pairs.MarshalJSON()
	}
	if len(p.records) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(p.records)
}

// scalarString renders a scalar field value for the text-based formats.
func scalarString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
