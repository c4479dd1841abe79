package algebra

import (
	"sort"

	"github.com/dieterich-lab/dorina/record"
)

// Spanned is the constraint every record type passed through package algebra
// must satisfy: it can report its own coordinates, and produce a copy of
// itself with different coordinates (used by Slop).
type Spanned[T any] interface {
	Span() record.Interval
	WithSpan(record.Interval) T
}

// Entry decorates a record with its position in the stream it was read
// from, so operators can break sort ties deterministically (spec §4.4:
// "ties are broken by (start asc, end asc, original stream index)").
type Entry[T Spanned[T]] struct {
	Value T
	Index int
}

// Stream is a sequence of entries. Operators that accept a Stream accept it
// in any order, but only guarantee their own determinism claims when the
// input is already sorted by (Chrom, Start, End); unsorted input is sorted
// first (spec §4.4: "If an input is unsorted, it is sorted first").
type Stream[T Spanned[T]] []Entry[T]

// New builds a Stream from a plain slice of records, in their given order.
func New[T Spanned[T]](values []T) Stream[T] {
	s := make(Stream[T], len(values))
	for i, v := range values {
		s[i] = Entry[T]{Value: v, Index: i}
	}
	return s
}

// Values extracts the plain records back out of a Stream, discarding the
// stream-index decoration.
func (s Stream[T]) Values() []T {
	out := make([]T, len(s))
	for i, e := range s {
		out[i] = e.Value
	}
	return out
}

func (s Stream[T]) span(i int) record.Interval {
	return s[i].Value.Span()
}

// IsSorted reports whether s already satisfies the (Chrom, Start, End)
// ordering every operator in this package assumes.
func (s Stream[T]) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if s.span(i).Less(s.span(i - 1)) {
			return false
		}
	}
	return true
}

// SortStable returns s sorted by (Chrom, Start, End, Index), the latter
// being the deterministic tie-break spec §4.4 requires. The receiver is not
// mutated.
func (s Stream[T]) SortStable() Stream[T] {
	out := make(Stream[T], len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].Value.Span(), out[j].Value.Span()
		if si.Chrom != sj.Chrom {
			return si.Chrom < sj.Chrom
		}
		if si.Start != sj.Start {
			return si.Start < sj.Start
		}
		if si.End != sj.End {
			return si.End < sj.End
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// ensureSorted returns s unchanged if already sorted, else a sorted copy.
func ensureSorted[T Spanned[T]](s Stream[T]) Stream[T] {
	if s.IsSorted() {
		return s
	}
	return s.SortStable()
}
