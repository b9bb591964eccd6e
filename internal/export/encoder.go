package export

import "errors"

// Export pipeline errors.
var (
	// ErrUnsupportedFormat indicates a format tag outside the supported set.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrNoData indicates a payload with nothing to encode. The dispatcher
	// treats it as a silent no-op: no file is produced.
	ErrNoData = errors.New("no data to export")
	// ErrEmptyRecordSet indicates a records payload with no records where the
	// format requires at least one to discover field names.
	ErrEmptyRecordSet = errors.New("empty record set")
)

// Encoder is a pure transformation from a payload to a byte sequence in one
// target file format. Encoders never touch the save mechanism.
type Encoder interface {
	Encode(payload Payload) ([]byte, error)
	Extension() string
	MIMEType() string
}

// FileSink persists encoded bytes as a user-retrievable file. The host
// supplies the implementation: a directory write, a stream, or a test double.
type FileSink interface {
	Save(data []byte, filename, mimeType string) error
}

// Notifier surfaces user-facing export failure messages for the formats whose
// errors are not returned to the caller.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(message string)

// Notify calls the wrapped function.
func (f NotifierFunc) Notify(message string) {
	f(message)
}
