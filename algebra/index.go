package algebra

import "github.com/dieterich-lab/dorina/record"

// window is a sliding overlap window over a chromosome's worth of a
// Start-sorted stream. It generalizes the teacher's BEDUnion sequential-
// query cache (lastIdx/isSequential/lastPosPlus1 in interval.BEDUnion):
// that type remembers a single monotonically-advancing search position
// across a run of ascending ContainsByName/ContainsByID queries so each one
// after the first is cheap. Here the same idea — advance forward, never
// look back — drives a window of candidate B-records instead of a single
// boolean, since the engine needs to name which B record witnessed a hit,
// not just whether one exists.
//
// Both endpoints only move forward as the caller's A-interval advances, so
// total work across a whole chromosome is O(len(a)+len(b)) once amortized,
// matching the "operations ... must use a streaming sorted-merge
// implementation" requirement in spec §4.4.
type window[B Spanned[B]] struct {
	b  []Entry[B]
	lo int // first index that might still be relevant
	hi int // first index not yet admitted into the window
}

func newWindow[B Spanned[B]](b []Entry[B]) *window[B] {
	return &window[B]{b: b}
}

// query returns every window entry overlapping a. a.Start must be
// non-decreasing across successive calls.
func (w *window[B]) query(a record.Interval) []Entry[B] {
	for w.hi < len(w.b) && w.b[w.hi].Value.Span().Start < a.End {
		w.hi++
	}
	for w.lo < w.hi && w.b[w.lo].Value.Span().End <= a.Start {
		w.lo++
	}
	if w.lo >= w.hi {
		return nil
	}
	var matches []Entry[B]
	for idx := w.lo; idx < w.hi; idx++ {
		if span := w.b[idx].Value.Span(); span.End > a.Start && span.Start < a.End {
			matches = append(matches, w.b[idx])
		}
	}
	return matches
}

// chromGroup is a maximal run of a stream's entries sharing one chromosome.
type chromGroup[T Spanned[T]] struct {
	chrom   string
	entries Stream[T]
}

// groupByChrom splits a Chrom-sorted stream into contiguous per-chromosome
// runs, preserving each run's relative order.
func groupByChrom[T Spanned[T]](s Stream[T]) []chromGroup[T] {
	var groups []chromGroup[T]
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || s[i].Value.Span().Chrom != s[start].Value.Span().Chrom {
			groups = append(groups, chromGroup[T]{chrom: s[start].Value.Span().Chrom, entries: s[start:i]})
			start = i
		}
	}
	return groups
}
