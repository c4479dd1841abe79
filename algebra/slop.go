package algebra

import "fmt"

// ChromSizes maps a chromosome name to its length, required by Slop to
// clamp expanded intervals to valid coordinates.
type ChromSizes map[string]int64

// MissingChromosomeError is returned by Slop when a record names a
// chromosome absent from the ChromSizes table.
type MissingChromosomeError struct {
	Chrom string
}

func (e *MissingChromosomeError) Error() string {
	return fmt.Sprintf("missing chromosome size for %q", e.Chrom)
}

// Slop expands every record of a by window bases on both sides, clamped to
// [0, chrom_length] (spec §4.4). window=0 is a no-op that still normalizes
// coordinate ordering (records are re-sorted after expansion, since
// expansion can change relative order). A negative window contracts the
// interval instead, with End clamped to no less than Start. The engine
// calls Slop only with a positive window; window=-1 skips it entirely
// (see package engine).
func Slop[T Spanned[T]](a Stream[T], window int64, sizes ChromSizes) (Stream[T], error) {
	out := make(Stream[T], len(a))
	for i, e := range a {
		iv := e.Value.Span()
		size, ok := sizes[iv.Chrom]
		if !ok {
			return nil, &MissingChromosomeError{Chrom: iv.Chrom}
		}
		start := iv.Start - window
		if start < 0 {
			start = 0
		}
		end := iv.End + window
		if end > size {
			end = size
		}
		if end < start {
			end = start
		}
		iv.Start, iv.End = start, end
		out[i] = Entry[T]{Value: e.Value.WithSpan(iv), Index: e.Index}
	}
	return out.SortStable(), nil
}
