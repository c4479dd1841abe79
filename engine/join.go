package engine

import (
	"github.com/dieterich-lab/dorina/algebra"
	"github.com/dieterich-lab/dorina/bed"
)

// join performs the final annotation join: the combined stream is
// re-intersected, in wa+wb mode, against the regulator set r.query.Join
// selects, producing one Hit per (region, witnessing regulator) pair
// (spec §4.5). Advances to StateJoined.
func (r *Run) join() error {
	streams := r.joinRegulatorStreams()
	union := algebra.Union(streams...)
	pairs := algebra.IntersectAnyPairs(r.combined, union)

	hits := make([]Hit, len(pairs))
	for i, p := range pairs {
		hits[i] = Hit{Region: p.A, Regulator: p.B}
	}
	r.hits = hits
	r.state = StateJoined
	return nil
}

// joinRegulatorStreams picks which side(s)' regulator streams the final
// join re-intersects against, per r.query.Join (spec §9's "make the final
// join configurable"). JoinAllRegulators (the default) reproduces the
// source's analyse() step, which re-joins against A ∪ B regardless of
// combine op, including the cross-side witness leakage noted in spec §9.
// JoinContributingOnly withholds B's regulators from a `not` result, since
// "in A, not in B" witnessed by a B regulator contradicts the exclusion.
func (r *Run) joinRegulatorStreams() []algebra.Stream[bed.Record] {
	streams := make([]algebra.Stream[bed.Record], 0, len(r.regsA)+len(r.regsB))
	for _, v := range r.regsA {
		streams = append(streams, v.Stream)
	}
	if r.query.B == nil {
		return streams
	}
	if r.query.Join == JoinContributingOnly && r.query.Combine == CombineNot {
		return streams
	}
	for _, v := range r.regsB {
		streams = append(streams, v.Stream)
	}
	return streams
}
