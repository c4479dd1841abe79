package engine

import "github.com/dieterich-lab/dorina/algebra"

// combine implements spec.md §4.5's combine(A, B, op) contract, advancing
// to StateCombined. A query with no side B is already "combined" (the
// combined stream is just side A).
func (r *Run) combine() error {
	if r.query.B == nil {
		r.combined = r.sideA
		r.state = StateCombined
		return nil
	}
	switch r.query.Combine {
	case CombineOr:
		r.combined = algebra.Union(r.sideA, r.sideB)
	case CombineAnd:
		r.combined = algebra.IntersectAny(r.sideA, r.sideB)
	case CombineXor:
		r.combined = algebra.Union(algebra.Subtract(r.sideA, r.sideB), algebra.Subtract(r.sideB, r.sideA))
	case CombineNot:
		r.combined = algebra.Subtract(r.sideA, r.sideB)
	}
	r.state = StateCombined
	return nil
}
