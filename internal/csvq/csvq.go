// Package csvq reads and writes delimited files with a configurable quote
// character. The standard encoding/csv package always quotes with '"',
// while Neo4j dumps of this project use a single quote.
package csvq

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrQuote is returned when a quoted field is not closed before the end of
// input.
var ErrQuote = errors.New("csvq: quoted field is not closed")

const (
	// Tab is the default field separator.
	Tab = '\t'

	// SingleQuote is the default quote character.
	SingleQuote = '\''
)

// Writer writes records separated by Comma and terminated by a newline.
type Writer struct {
	// Comma is a field separator.
	Comma rune

	// Quote surrounds fields that contain special characters. Quote
	// characters inside such fields are doubled.
	Quote rune

	w *bufio.Writer
}

// NewWriter returns a Writer with tab separator and single quote.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Comma: Tab,
		Quote: SingleQuote,
		w:     bufio.NewWriter(w),
	}
}

// Write writes one record.
func (w *Writer) Write(record []string) error {
	for i, field := range record {
		if i > 0 {
			if _, err := w.w.WriteRune(w.Comma); err != nil {
				return err
			}
		}
		if err := w.writeField(field); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

func (w *Writer) writeField(field string) error {
	var err error
	if !w.needsQuotes(field) {
		_, err = w.w.WriteString(field)
		return err
	}

	q := string(w.Quote)
	field = strings.ReplaceAll(field, q, q+q)
	if _, err = w.w.WriteString(q); err != nil {
		return err
	}
	if _, err = w.w.WriteString(field); err != nil {
		return err
	}
	_, err = w.w.WriteString(q)
	return err
}

func (w *Writer) needsQuotes(field string) bool {
	if field == "" {
		return true
	}
	return strings.ContainsRune(field, w.Comma) ||
		strings.ContainsRune(field, w.Quote) ||
		strings.ContainsAny(field, "\r\n")
}

// Reader reads records written by Writer.
type Reader struct {
	// Comma is a field separator.
	Comma rune

	// Quote surrounds fields that contain special characters.
	Quote rune

	r *bufio.Reader
}

// NewReader returns a Reader with tab separator and single quote.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		Comma: Tab,
		Quote: SingleQuote,
		r:     bufio.NewReader(r),
	}
}

// Read returns the next record. At the end of input it returns io.EOF.
func (r *Reader) Read() ([]string, error) {
	var record []string
	var field strings.Builder
	var quoted, wasQuoted, started bool

	for {
		c, _, err := r.r.ReadRune()
		if err == io.EOF {
			if quoted {
				return nil, ErrQuote
			}
			if !started {
				return nil, io.EOF
			}
			return append(record, field.String()), nil
		}
		if err != nil {
			return nil, err
		}
		started = true

		if quoted {
			if c != r.Quote {
				field.WriteRune(c)
				continue
			}
			next, _, err := r.r.ReadRune()
			if err == nil && next == r.Quote {
				field.WriteRune(c)
				continue
			}
			if err == nil {
				_ = r.r.UnreadRune()
			} else if err != io.EOF {
				return nil, err
			}
			quoted = false
			continue
		}

		switch {
		case c == r.Quote && field.Len() == 0 && !wasQuoted:
			quoted = true
			wasQuoted = true
		case c == r.Comma:
			record = append(record, field.String())
			field.Reset()
			wasQuoted = false
		case c == '\n':
			return append(record, field.String()), nil
		default:
			field.WriteRune(c)
		}
	}
}
