package bed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/dieterich-lab/dorina/record"
)

// Record is a single BED line. Extra holds every column beyond the sixth,
// verbatim, so a round-trip of a BED12 line reproduces it exactly.
type Record struct {
	record.Interval
	Name    string
	Score   string
	Extra   []string
	LineNo  int
	SrcFile string
}

// Span returns r's coordinates, satisfying algebra.Spanned.
func (r Record) Span() record.Interval {
	return r.Interval
}

// WithSpan returns a copy of r with its coordinates replaced by iv,
// satisfying algebra.Spanned. Used by algebra.Slop to materialize an
// expanded regulator interval.
func (r Record) WithSpan(iv record.Interval) Record {
	r.Interval = iv
	return r
}

// Project6 returns the BED6 projection of r: chrom, start, end, name,
// score, strand, discarding any columns beyond the sixth. Width-3 records
// (no name/score/strand) get the defaults specified in spec §4.1.
// Project6 is idempotent: projecting an already-BED6 record returns an
// equivalent record with Extra cleared.
func (r Record) Project6() Record {
	out := r
	out.Extra = nil
	if out.Name == "" {
		out.Name = "."
	}
	if out.Score == "" {
		out.Score = "0"
	}
	return out
}

// Columns returns r rendered as BED fields: three columns when r has no
// name, score, strand or extra fields, otherwise the six BED6 columns
// followed by Extra. BED3/6/9/12 input keeps its width; BED4 and BED5 input
// is rendered as BED6.
func (r Record) Columns() []string {
	cols := []string{r.Chrom, strconv.FormatInt(r.Start, 10), strconv.FormatInt(r.End, 10)}
	if r.Name == "" && r.Score == "" && r.Strand == record.StrandUnknown && len(r.Extra) == 0 {
		return cols
	}
	name := r.Name
	if name == "" {
		name = "."
	}
	score := r.Score
	if score == "" {
		score = "0"
	}
	cols = append(cols, name, score, r.Strand.String())
	cols = append(cols, r.Extra...)
	return cols
}

// String renders r as a tab-separated BED line, without a trailing newline.
func (r Record) String() string {
	return strings.Join(r.Columns(), "\t")
}

// Reader scans a BED stream, skipping comment ("#"-prefixed) and blank
// lines, same as the teacher's interval.scanBEDUnion.
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
		rd.err = pkgerrors.Wrapf(err, "bed: reading %s", rd.path)
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
	if len(cols) == 1 {
		// Tolerate whitespace-delimited fixtures, same as hand-written test BEDs.
		cols = strings.Fields(line)
	}
	if len(cols) < 3 {
		return Record{}, &record.MalformedError{File: path, Line: lineNo,
			Reason: fmt.Sprintf("expected at least 3 columns, got %d", len(cols))}
	}
	start, err := strconv.ParseInt(cols[1], 10, 64)
	if err != nil {
		return Record{}, &record.MalformedError{File: path, Line: lineNo,
			Reason: "non-integer start coordinate " + cols[1]}
	}
	end, err := strconv.ParseInt(cols[2], 10, 64)
	if err != nil {
		return Record{}, &record.MalformedError{File: path, Line: lineNo,
			Reason: "non-integer end coordinate " + cols[2]}
	}
	if start > end {
		return Record{}, &record.MalformedError{File: path, Line: lineNo,
			Reason: fmt.Sprintf("start %d > end %d", start, end)}
	}
	rec := Record{
		Interval: record.Interval{Chrom: cols[0], Start: start, End: end},
		LineNo:   lineNo,
		SrcFile:  path,
	}
	if len(cols) >= 4 {
		rec.Name = cols[3]
	}
	if len(cols) >= 5 {
		rec.Score = cols[4]
	}
	if len(cols) >= 6 {
		strand, err := record.ParseStrand(cols[5])
		if err != nil {
			return Record{}, &record.MalformedError{File: path, Line: lineNo, Reason: err.Error()}
		}
		rec.Strand = strand
	} else {
		rec.Strand = record.StrandUnknown
	}
	if len(cols) > 6 {
		rec.Extra = append([]string(nil), cols[6:]...)
	}
	return rec, nil
}

// WriteTo emits recs as tab-separated BED lines, one per line, each
// terminated by a trailing newline and nothing else, per spec §4.1.
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
