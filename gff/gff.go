package gff

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/dieterich-lab/dorina/record"
)

// Record is a single GFF3 line, stored with 0-based half-open coordinates.
type Record struct {
	record.Interval
	Source  string
	Feature string
	Score   string
	Frame   string
	Attrs   record.Attrs
	LineNo  int
	SrcFile string
}

// Span returns r's coordinates, satisfying algebra.Spanned.
func (r Record) Span() record.Interval {
	return r.Interval
}

// WithSpan returns a copy of r with its coordinates replaced by iv,
// satisfying algebra.Spanned. Used by algebra.Slop to materialize a
// windowed region record whose rendered coordinates reflect the expansion.
func (r Record) WithSpan(iv record.Interval) Record {
	r.Interval = iv
	return r
}

// ID returns the "ID=" attribute value used by doRiNA's --genes filter and
// by the gene-listing surface (spec §6, §4.7).
func (r Record) ID() (string, bool) {
	return r.Attrs.Get("ID")
}

// Columns renders r as the nine GFF3 columns, restoring 1-based inclusive
// coordinates.
func (r Record) Columns() []string {
	score := r.Score
	if score == "" {
		score = "."
	}
	frame := r.Frame
	if frame == "" {
		frame = "."
	}
	source := r.Source
	if source == "" {
		source = "."
	}
	return []string{
		r.Chrom,
		source,
		r.Feature,
		strconv.FormatInt(r.Start+1, 10),
		strconv.FormatInt(r.End, 10),
		score,
		r.Strand.String(),
		frame,
		r.Attrs.String(),
	}
}

// String renders r as a tab-separated GFF3 line, without a trailing newline.
func (r Record) String() string {
	return strings.Join(r.Columns(), "\t")
}

// Reader scans a GFF3 stream, skipping "#"-prefixed and blank lines.
type Reader struct {
	scanner *bufio.Scanner
	path    string
	lineNo  int
	err     error
}

// NewReader wraps r. path is used only to annotate error messages.
func NewReader(r io.Reader, path string) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Reader{scanner: scanner, path: path}
}

// Next returns the next record, or io.EOF when the stream is exhausted.
func (rd *Reader) Next() (Record, error) {
	if rd.err != nil {
		return Record{}, rd.err
	}
	for rd.scanner.Scan() {
		rd.lineNo++
		line := rd.scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := parseLine(line, rd.lineNo, rd.path)
		if err != nil {
			rd.err = err
			return Record{}, err
		}
		return rec, nil
	}
	if err := rd.scanner.Err(); err != nil {
		rd.err = pkgerrors.Wrapf(err, "gff: reading %s", rd.path)
		return Record{}, rd.err
	}
	rd.err = io.EOF
	return Record{}, io.EOF
}

// ReadAll consumes the remainder of rd into a slice, in file order.
func (rd *Reader) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, err := rd.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

func parseLine(line string, lineNo int, path string) (Record, error) {
	cols := strings.Split(line, "\t")
	if len(cols) != 9 {
		return Record{}, &record.MalformedError{File: path, Line: lineNo,
			Reason: fmt.Sprintf("expected 9 columns, got %d", len(cols))}
	}
	start1, err := strconv.ParseInt(cols[3], 10, 64)
	if err != nil {
		return Record{}, &record.MalformedError{File: path, Line: lineNo,
			Reason: "non-integer start coordinate " + cols[3]}
	}
	end, err := strconv.ParseInt(cols[4], 10, 64)
	if err != nil {
		return Record{}, &record.MalformedError{File: path, Line: lineNo,
			Reason: "non-integer end coordinate " + cols[4]}
	}
	start0 := start1 - 1
	if start0 > end {
		return Record{}, &record.MalformedError{File: path, Line: lineNo,
			Reason: fmt.Sprintf("start %d > end %d", start1, end)}
	}
	strand, err := record.ParseStrand(cols[6])
	if err != nil {
		return Record{}, &record.MalformedError{File: path, Line: lineNo, Reason: err.Error()}
	}
	rec := Record{
		Interval: record.Interval{Chrom: cols[0], Start: start0, End: end, Strand: strand},
		Source:   valueOrEmpty(cols[1]),
		Feature:  cols[2],
		Score:    valueOrEmpty(cols[5]),
		Frame:    valueOrEmpty(cols[7]),
		Attrs:    record.ParseAttrs(cols[8]),
		LineNo:   lineNo,
		SrcFile:  path,
	}
	return rec, nil
}

func valueOrEmpty(s string) string {
	if s == "." {
		return ""
	}
	return s
}

// WriteTo emits recs as tab-separated GFF3 lines, one per line.
func WriteTo(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range recs {
		if _, err := bw.WriteString(rec.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
