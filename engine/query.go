package engine

import "github.com/dieterich-lab/dorina/catalog"

// Match is a side's predicate mode over its regulator set.
type Match string

const (
	MatchAny Match = "any"
	MatchAll Match = "all"
)

// CombineOp is the inter-set combinator joining side A and side B.
type CombineOp string

const (
	CombineOr  CombineOp = "or"
	CombineAnd CombineOp = "and"
	CombineXor CombineOp = "xor"
	CombineNot CombineOp = "not"
)

// JoinMode selects which regulators the final annotation join re-intersects
// the combined stream against (spec §9 "make the final join configurable").
type JoinMode int

const (
	// JoinAllRegulators re-intersects against the union of every regulator
	// from both sides, reproducing the source's analyse() step verbatim
	// (including its cross-side witness leakage, kept for compatibility).
	// This is the zero value, so a Query built without setting Join gets
	// the spec-compatible default.
	JoinAllRegulators JoinMode = iota
	// JoinContributingOnly drops B's regulators from the re-join when
	// CombineOp is Not, since a `not` result is defined as "in A, not in
	// B" and witnessing it with a B regulator contradicts that exclusion.
	// Other combinators still use the full union, since an `or`/`and`/`xor`
	// result may genuinely have come from either side.
	JoinContributingOnly
)

// GenesFilter restricts the region stream to a set of gene ids, or allows
// everything (spec.md §3: "genes: [id…] or \"all\"").
type GenesFilter struct {
	All bool
	IDs []string
}

// Allows reports whether a gene id passes this filter.
func (g GenesFilter) Allows(id string) bool {
	if g.All || len(g.IDs) == 0 {
		return true
	}
	for _, want := range g.IDs {
		if want == id {
			return true
		}
	}
	return false
}

// Side is one half of a query: a regulator set, how it must be matched,
// which region file backs it, and an optional window.
type Side struct {
	Regulators []string
	Match      Match
	Region     catalog.Region
	// Window is -1 for "off" (the explicit no-window sentinel, spec §4.5),
	// 0 to intersect against the first regulator without expanding it, or
	// a positive base count to expand after intersecting.
	Window int
}

// Query is the value object spec.md §3 describes: one assembly, side A,
// an optional side B, how to combine them, and a gene filter.
type Query struct {
	Assembly string
	A        Side
	B        *Side
	Combine  CombineOp
	Genes    GenesFilter
	Join     JoinMode
}
