package algebra

import "github.com/dieterich-lab/dorina/bed"

// BED6 is the subset of Spanned implementations that can also project
// themselves to BED6 form, letting ProjectBED6 stay generic instead of
// hard-coding bed.Record.
type BED6[T any] interface {
	Spanned[T]
	Project6() T
}

// ProjectBED6 normalizes every record in a to BED6 width (spec §4.4).
// regulator.Resolve applies it to every regulator stream before that stream
// enters the engine's joins. Idempotent: ProjectBED6(ProjectBED6(a)) ==
// ProjectBED6(a).
func ProjectBED6[T BED6[T]](a Stream[T]) Stream[T] {
	out := make(Stream[T], len(a))
	for i, e := range a {
		out[i] = Entry[T]{Value: e.Value.Project6(), Index: e.Index}
	}
	return out
}

// Sort returns a sorted copy of a, the named "sort" operator of spec §4.4.
// Every other operator in this package sorts its own inputs implicitly;
// Sort exists so callers (codec round-trip, tests) can normalize a stream
// without also running a join.
func Sort[T Spanned[T]](a Stream[T]) Stream[T] {
	return ensureSorted(a)
}

// MergeAdjacent coalesces consecutive same-chromosome records whose spans
// touch or overlap into a single record spanning both, the "merge_adjacent"
// operator of spec §4.4. It is not part of any core join;
// it exists for codec round-trip and for building disjoint coverage sets
// from data that may contain overlaps.
func MergeAdjacent[T Spanned[T]](a Stream[T]) Stream[T] {
	a = ensureSorted(a)
	if len(a) == 0 {
		return nil
	}
	out := make(Stream[T], 0, len(a))
	cur := a[0]
	curSpan := cur.Value.Span()
	for _, e := range a[1:] {
		span := e.Value.Span()
		if span.Chrom == curSpan.Chrom && span.Start <= curSpan.End {
			if span.End > curSpan.End {
				curSpan.End = span.End
				cur = Entry[T]{Value: cur.Value.WithSpan(curSpan), Index: cur.Index}
			}
			continue
		}
		out = append(out, cur)
		cur = e
		curSpan = span
	}
	out = append(out, cur)
	return out
}

var _ BED6[bed.Record] = bed.Record{}
