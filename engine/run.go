package engine

import (
	"github.com/dieterich-lab/dorina/algebra"
	"github.com/dieterich-lab/dorina/catalog"
	"github.com/dieterich-lab/dorina/engine/doraerr"
	"github.com/dieterich-lab/dorina/gff"
	"github.com/dieterich-lab/dorina/regulator"
)

// State names one stop in a query's fixed progression (spec §4.5).
type State int

const (
	StateParsed State = iota
	StateResolved
	StateSideComputed
	StateCombined
	StateJoined
	StateEmitted
)

func (s State) String() string {
	switch s {
	case StateParsed:
		return "Parsed"
	case StateResolved:
		return "Resolved"
	case StateSideComputed:
		return "SideComputed"
	case StateCombined:
		return "Combined"
	case StateJoined:
		return "Joined"
	case StateEmitted:
		return "Emitted"
	default:
		return "Unknown"
	}
}

// Run carries one query's execution state. A failed transition leaves
// state at the last stage reached, for diagnostics; it never advances on
// error.
type Run struct {
	catalog *catalog.Catalog
	query   Query
	state   State

	assembly *catalog.Assembly
	regsA    []*regulator.View
	regsB    []*regulator.View

	sideA    algebra.Stream[gff.Record]
	sideB    algebra.Stream[gff.Record]
	combined algebra.Stream[gff.Record]
	hits     []Hit
}

// New validates q's shape and returns a Run at StateParsed, or an
// *doraerr.InvalidQueryError if q is malformed independent of the catalog.
func New(c *catalog.Catalog, q Query) (*Run, error) {
	if q.Assembly == "" {
		return nil, &doraerr.InvalidQueryError{Reason: "assembly is required"}
	}
	if err := validateSide(q.A, "a"); err != nil {
		return nil, err
	}
	if q.B != nil {
		if err := validateSide(*q.B, "b"); err != nil {
			return nil, err
		}
		switch q.Combine {
		case CombineOr, CombineAnd, CombineXor, CombineNot:
		default:
			return nil, &doraerr.InvalidQueryError{Reason: "combine must be one of or/and/xor/not when side b is present"}
		}
	}
	return &Run{catalog: c, query: q, state: StateParsed}, nil
}

func validateSide(s Side, label string) error {
	if s.Match != MatchAny && s.Match != MatchAll {
		return &doraerr.InvalidQueryError{Reason: "side " + label + ": match must be any or all"}
	}
	if s.Window < -1 {
		return &doraerr.InvalidQueryError{Reason: "side " + label + ": window must be >= -1"}
	}
	return nil
}

// State reports the stage this run last completed.
func (r *Run) State() State { return r.state }

// Execute drives the run through every remaining transition and returns
// the emitted hits. It is equivalent to calling each transition method in
// order.
func (r *Run) Execute() ([]Hit, error) {
	if err := r.resolve(); err != nil {
		return nil, err
	}
	if err := r.computeSides(); err != nil {
		return nil, err
	}
	if err := r.combine(); err != nil {
		return nil, err
	}
	if err := r.join(); err != nil {
		return nil, err
	}
	return r.emit(), nil
}

// resolve looks up the assembly and every named regulator, advancing to
// StateResolved.
func (r *Run) resolve() error {
	assembly, ok := r.catalog.LookupAssembly(r.query.Assembly)
	if !ok {
		return &doraerr.UnknownAssemblyError{Assembly: r.query.Assembly}
	}
	r.assembly = assembly

	regsA, err := resolveAll(r.catalog, r.query.Assembly, r.query.A.Regulators)
	if err != nil {
		return err
	}
	r.regsA = regsA

	if r.query.B != nil {
		regsB, err := resolveAll(r.catalog, r.query.Assembly, r.query.B.Regulators)
		if err != nil {
			return err
		}
		r.regsB = regsB
	}

	r.state = StateResolved
	return nil
}

func resolveAll(c *catalog.Catalog, assembly string, names []string) ([]*regulator.View, error) {
	views := make([]*regulator.View, 0, len(names))
	for _, name := range names {
		v, err := regulator.Resolve(c, assembly, name)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
