package algebra

import "container/heap"

// Union performs a multiway sorted merge of streams, concatenating rather
// than coordinate-merging: every input record appears exactly once in the
// output, duplicates and all (spec §4.4: "Equivalent to 'cat'; preserves
// duplicates"). Each stream is sorted first if it isn't already. The result
// is sorted, and for all sorted A, B: len(Union(A, B)) == len(A) + len(B)
// (spec §8).
func Union[T Spanned[T]](streams ...Stream[T]) Stream[T] {
	sorted := make([]Stream[T], len(streams))
	total := 0
	for i, s := range streams {
		sorted[i] = ensureSorted(s)
		total += len(sorted[i])
	}
	out := make(Stream[T], 0, total)
	h := &mergeHeap[T]{}
	for streamIdx, s := range sorted {
		if len(s) > 0 {
			heap.Push(h, mergeCursor[T]{stream: s, pos: 0, streamIdx: streamIdx})
		}
	}
	heap.Init(h)
	for h.Len() > 0 {
		top := heap.Pop(h).(mergeCursor[T])
		out = append(out, top.stream[top.pos])
		if top.pos+1 < len(top.stream) {
			top.pos++
			heap.Push(h, top)
		}
	}
	return out
}

// Cat is an alias for Union, named separately because spec §4.4 lists "cat"
// as its own named operator alongside the set algebra operators, even
// though the core gives it identical semantics to union.
func Cat[T Spanned[T]](streams ...Stream[T]) Stream[T] {
	return Union(streams...)
}

type mergeCursor[T Spanned[T]] struct {
	stream    Stream[T]
	pos       int
	streamIdx int
}

type mergeHeap[T Spanned[T]] []mergeCursor[T]

func (h mergeHeap[T]) Len() int { return len(h) }

func (h mergeHeap[T]) Less(i, j int) bool {
	si, sj := h[i].stream[h[i].pos].Value.Span(), h[j].stream[h[j].pos].Value.Span()
	if si.Chrom != sj.Chrom {
		return si.Chrom < sj.Chrom
	}
	if si.Start != sj.Start {
		return si.Start < sj.Start
	}
	if si.End != sj.End {
		return si.End < sj.End
	}
	if h[i].streamIdx != h[j].streamIdx {
		return h[i].streamIdx < h[j].streamIdx
	}
	return h[i].stream[h[i].pos].Index < h[j].stream[h[j].pos].Index
}

func (h mergeHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *mergeHeap[T]) Push(x any) {
	*h = append(*h, x.(mergeCursor[T]))
}

func (h *mergeHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
