package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Request describes a single export: what to encode, which format, and the
// filename stem (no extension) for the saved artifact.
type Request struct {
	Filename string
	Format   Format
	Payload  Payload
}

// fallbackHint maps each guarded format to the alternative suggested on
// failure.
var fallbackHint = map[Format]string{
	FormatExcel: "CSV",
	FormatPDF:   "CSV or JSON",
	FormatWord:  "PDF",
}

// Dispatcher routes export requests to format-specific encoders and hands the
// result to the configured FileSink. Encoders are initialized on first use and
// cached; each export is an independent, stateless one-shot with no retry.
type Dispatcher struct {
	sink         FileSink
	notifier     Notifier
	logger       *slog.Logger
	encoders     map[Format]Encoder
	constructors map[Format]func() (Encoder, error)
	mu           sync.Mutex
}

// NewDispatcher creates a dispatcher writing through sink. notifier may be nil
// when no user-facing reporting channel exists.
func NewDispatcher(sink FileSink, notifier Notifier, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		sink:     sink,
		notifier: notifier,
		logger:   logger,
		encoders: make(map[Format]Encoder),
		constructors: map[Format]func() (Encoder, error){
			FormatJSON:  newJSONEncoder,
			FormatCSV:   newCSVEncoder,
			FormatExcel: newExcelEncoder,
			FormatPDF:   newPDFEncoder,
			FormatWord:  newWordEncoder,
		},
	}
}

// Export encodes the request's payload and saves the produced file.
//
// Failure semantics follow the format: json and csv errors are returned to
// the caller, while excel, pdf and word errors are logged, surfaced through
// the Notifier, and swallowed. An unsupported format logs a warning and
// returns nil. A payload with nothing to encode (empty record set for csv) is
// a silent no-op.
func (d *Dispatcher) Export(ctx context.Context, req Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !req.Format.Valid() {
		d.logger.Warn("unsupported export format requested", "format", string(req.Format))
		return nil
	}

	enc, err := d.encoder(req.Format)
	if err != nil {
		return d.fail(req, fmt.Errorf("initializing %s encoder: %w", req.Format, err))
	}

	data, err := enc.Encode(req.Payload)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			d.logger.Debug("nothing to export", "format", req.Format, "filename", req.Filename)
			return nil
		}
		return d.fail(req, fmt.Errorf("encoding %s: %w", req.Format, err))
	}

	filename := req.Filename + enc.Extension()
	if err := d.sink.Save(data, filename, enc.MIMEType()); err != nil {
		return d.fail(req, fmt.Errorf("saving %s: %w", filename, err))
	}

	d.logger.Info("export complete",
		"format", req.Format,
		"file", filename,
		"bytes", len(data))
	return nil
}

// encoder returns the cached encoder for the format, constructing it on first
// use.
func (d *Dispatcher) encoder(f Format) (Encoder, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if enc, ok := d.encoders[f]; ok {
		return enc, nil
	}
	construct, ok := d.constructors[f]
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	enc, err := construct()
	if err != nil {
		return nil, err
	}
	d.encoders[f] = enc
	return enc, nil
}

// fail applies the per-format failure policy: guarded formats notify the user
// and return nil, the rest propagate.
func (d *Dispatcher) fail(req Request, err error) error {
	if !req.Format.guarded() {
		return err
	}

	d.logger.Error("export failed",
		"format", req.Format,
		"filename", req.Filename,
		"error", err)
	if d.notifier != nil {
		d.notifier.Notify(fmt.Sprintf("%s export failed. Try exporting as %s instead.",
			req.Format, fallbackHint[req.Format]))
	}
	return nil
}
