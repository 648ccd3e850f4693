package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/bitboard-chess-go/internal/config"
	"github.com/lgbarn/bitboard-chess-go/internal/engine"
)

// RecordWriter is the interface for writing positions and batch results.
// Different implementations handle different output formats (text, JSON).
type RecordWriter interface {
	// WritePosition writes a full position report.
	WritePosition(g *engine.Game) error

	// WriteRecord writes one batch result.
	WriteRecord(rec BatchRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewRecordWriter returns the writer for the configured format.
func NewRecordWriter(w io.Writer, cfg *config.OutputConfig) RecordWriter {
	if cfg.Format == config.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes diagrams and tab separated batch lines.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WritePosition writes the diagram and bookkeeping of the game.
func (tw *TextWriter) WritePosition(g *engine.Game) error {
	return WritePosition(tw.w, g, tw.cfg)
}

// WriteRecord writes one line: index, FEN, balance, movable pieces and
// destinations, or the error.
func (tw *TextWriter) WriteRecord(rec BatchRecord) error {
	var err error
	if rec.Error != "" {
		_, err = fmt.Fprintf(tw.w, "%d\terror\t%s\n", rec.Index, rec.Error)
	} else {
		_, err = fmt.Fprintf(tw.w, "%d\t%s\t%d\t%d\t%d\n",
			rec.Index, rec.FEN, rec.Balance, rec.Movable, rec.Destinations)
	}
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds batch records for array output.
type JSONOutput struct {
	Records []BatchRecord `json:"records"`
}

// JSONWriter writes positions as JSON documents. Batch records are
// buffered and written as one array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	records []BatchRecord
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		records: make([]BatchRecord, 0),
	}
}

// encode writes v as indented JSON.
func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WritePosition writes a position report immediately.
func (jw *JSONWriter) WritePosition(g *engine.Game) error {
	return jw.encode(NewPositionReport(g))
}

// WriteRecord buffers a batch record.
func (jw *JSONWriter) WriteRecord(rec BatchRecord) error {
	jw.records = append(jw.records, rec)
	return nil
}

// Flush writes all buffered records as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.records) == 0 {
		return nil
	}
	err := jw.encode(&JSONOutput{Records: jw.records})
	jw.records = jw.records[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
