package engine

import (
	"github.com/dieterich-lab/dorina/algebra"
	"github.com/dieterich-lab/dorina/bed"
	"github.com/dieterich-lab/dorina/catalog"
	"github.com/dieterich-lab/dorina/engine/doraerr"
	"github.com/dieterich-lab/dorina/gff"
	"github.com/dieterich-lab/dorina/regulator"
)

// computeSides runs side() for A (and B, if present), advancing to
// StateSideComputed.
func (r *Run) computeSides() error {
	sideA, err := side(r.assembly, r.query.A, r.regsA, r.query.Genes)
	if err != nil {
		return err
	}
	r.sideA = sideA

	if r.query.B != nil {
		sideB, err := side(r.assembly, *r.query.B, r.regsB, r.query.Genes)
		if err != nil {
			return err
		}
		r.sideB = sideB
	}

	r.state = StateSideComputed
	return nil
}

// loadRegion reads the assembly's file for region, converting a
// BED-backed intergenic file into GFF-shaped records (spec §9).
func loadRegion(assembly *catalog.Assembly, region catalog.Region) (algebra.Stream[gff.Record], error) {
	rf, ok := assembly.Regions[region]
	if !ok {
		return nil, &doraerr.UnknownRegionError{Assembly: assembly.Name, Region: string(region)}
	}
	var recs []gff.Record
	if rf.IsBED {
		bedRecs, err := bed.ReadPath(rf.Path)
		if err != nil {
			return nil, &doraerr.MalformedRecordError{Cause: err}
		}
		recs = make([]gff.Record, len(bedRecs))
		for i, rec := range bedRecs {
			recs[i] = gff.FromBED(rec, string(region))
		}
	} else {
		var err error
		recs, err = gff.ReadPath(rf.Path)
		if err != nil {
			return nil, &doraerr.MalformedRecordError{Cause: err}
		}
	}
	return algebra.New(recs), nil
}

// filterGenes drops region records whose ID= attribute isn't in genes.
func filterGenes(g algebra.Stream[gff.Record], genes GenesFilter) algebra.Stream[gff.Record] {
	if genes.All || len(genes.IDs) == 0 {
		return g
	}
	out := make(algebra.Stream[gff.Record], 0, len(g))
	for _, e := range g {
		id, ok := e.Value.ID()
		if ok && genes.Allows(id) {
			out = append(out, e)
		}
	}
	return out
}

// side implements spec.md §4.5's side(region, regulators, match, window)
// contract.
func side(assembly *catalog.Assembly, s Side, regs []*regulator.View, genes GenesFilter) (algebra.Stream[gff.Record], error) {
	g, err := loadRegion(assembly, s.Region)
	if err != nil {
		return nil, err
	}
	g = filterGenes(g, genes)

	regStreams := make([]algebra.Stream[bed.Record], len(regs))
	for i, v := range regs {
		regStreams[i] = v.Stream
	}

	if len(regStreams) == 0 {
		if s.Match == MatchAny && s.Window != -1 {
			return nil, &doraerr.InvalidQueryError{Reason: "match=any with a window requires at least one regulator"}
		}
		return g, nil
	}

	gPrime := g
	rPrime := regStreams
	if s.Window != -1 {
		r0 := regStreams[0]
		rPrime = regStreams[1:]
		gPrime = algebra.IntersectAny(g, r0)
		if s.Window > 0 {
			sizes := algebra.ChromSizes(assembly.ChromSizes)
			gPrime, err = algebra.Slop(gPrime, int64(s.Window), sizes)
			if err != nil {
				return nil, &doraerr.MissingChromosomeError{Cause: err}
			}
		}
	}

	switch s.Match {
	case MatchAll:
		return algebra.IntersectAll(gPrime, rPrime...), nil
	default: // MatchAny
		if len(rPrime) == 0 {
			return gPrime, nil
		}
		return algebra.IntersectAny(gPrime, algebra.Union(rPrime...)), nil
	}
}
