package algebra

import "github.com/dieterich-lab/dorina/record"

// Pair couples an A record with the B record that witnessed its overlap,
// the "wa+wb" reporting mode of spec §4.4 (report both sides' fields).
type Pair[A Spanned[A], B Spanned[B]] struct {
	A A
	B B
}

// IntersectAny reports, for every A record overlapping at least one B
// record, the A record alone (report=A mode of spec §4.4). A records are
// emitted in A's sorted (Chrom, Start, End, Index) order; an A record
// overlapping several B records is still emitted only once.
func IntersectAny[A Spanned[A], B Spanned[B]](a Stream[A], b Stream[B]) Stream[A] {
	a = ensureSorted(a)
	b = ensureSorted(b)
	out := make(Stream[A], 0, len(a))
	walkOverlaps(a, b, func(ae Entry[A], matches []Entry[B]) {
		if len(matches) > 0 {
			out = append(out, ae)
		}
	})
	return out
}

// IntersectAnyPairs reports every (A, B) overlap as a Pair, the "wa+wb"
// reporting mode of spec §4.4. An A record overlapping N B records produces
// N pairs, each in B's sorted order; pairs are grouped by A record in A's
// sorted order.
func IntersectAnyPairs[A Spanned[A], B Spanned[B]](a Stream[A], b Stream[B]) []Pair[A, B] {
	a = ensureSorted(a)
	b = ensureSorted(b)
	var out []Pair[A, B]
	walkOverlaps(a, b, func(ae Entry[A], matches []Entry[B]) {
		for _, be := range matches {
			out = append(out, Pair[A, B]{A: ae.Value, B: be.Value})
		}
	})
	return out
}

// IntersectAll is the left-fold of IntersectAny (report=A mode) over a
// chain of B streams, used by the engine for every match=all side
// (windowed or not) to require that a region survive a hit against every
// successive regulator stream. IntersectAll(a) with no B streams returns a
// unchanged.
func IntersectAll[A Spanned[A], B Spanned[B]](a Stream[A], bs ...Stream[B]) Stream[A] {
	cur := ensureSorted(a)
	for _, b := range bs {
		cur = IntersectAny(cur, b)
	}
	return cur
}

// walkOverlaps sweeps a (already sorted) against b (already sorted)
// chromosome by chromosome, calling visit once per A entry with the set of B
// entries it overlaps (nil if none). visit is called for every A entry, in
// the order of the (sorted) a passed in.
func walkOverlaps[A Spanned[A], B Spanned[B]](a Stream[A], b Stream[B], visit func(Entry[A], []Entry[B])) {
	bGroups := groupByChrom(b)
	bByChrom := make(map[string][]Entry[B], len(bGroups))
	for _, g := range bGroups {
		bByChrom[g.chrom] = g.entries
	}

	windows := make(map[string]*window[B], len(bGroups))
	for _, aGroup := range groupByChrom(a) {
		w, ok := windows[aGroup.chrom]
		if !ok {
			w = newWindow(bByChrom[aGroup.chrom])
			windows[aGroup.chrom] = w
		}
		for _, ae := range aGroup.entries {
			visit(ae, w.query(ae.Value.Span()))
		}
	}
}

// overlapsAny reports whether iv overlaps any entry in w's window.
// Subtract does not call it; it uses walkOverlaps.
func overlapsAny[B Spanned[B]](w *window[B], iv record.Interval) bool {
	return len(w.query(iv)) > 0
}
