package algebra

// Subtract returns the A-records with no overlap in B (spec §4.4:
// "subtract(A, B, v=true, wa=true): A-records with no overlap in B"). Output
// is in A's sorted order.
//
// Overlap is strand-insensitive, matching every join the engine performs.
// The strand-aware form (the source's `subtract -s`, used to carve introns
// from gene spans during region-file construction) is SubtractStranded; the
// engine never calls it, since it consumes prebuilt region files rather
// than re-deriving them (spec §9).
func Subtract[A Spanned[A], B Spanned[B]](a Stream[A], b Stream[B]) Stream[A] {
	a = ensureSorted(a)
	b = ensureSorted(b)
	out := make(Stream[A], 0, len(a))
	walkOverlaps(a, b, func(ae Entry[A], matches []Entry[B]) {
		if len(matches) == 0 {
			out = append(out, ae)
		}
	})
	return out
}

// SubtractStranded is Subtract restricted to same-strand overlaps, the
// `subtract -s` variant spec §9 notes is a data-preparation concern outside
// the engine's own query path but is kept available for building region
// files (e.g. carving introns from gene spans) in the teacher's style of
// exposing the primitive rather than the pipeline that calls it.
func SubtractStranded[A Spanned[A], B Spanned[B]](a Stream[A], b Stream[B]) Stream[A] {
	a = ensureSorted(a)
	b = ensureSorted(b)
	out := make(Stream[A], 0, len(a))
	walkOverlaps(a, b, func(ae Entry[A], matches []Entry[B]) {
		aSpan := ae.Value.Span()
		for _, be := range matches {
			if be.Value.Span().Strand == aSpan.Strand {
				return
			}
		}
		out = append(out, ae)
	})
	return out
}
