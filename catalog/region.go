package catalog

import (
	"fmt"

	"github.com/grailbio/base/errors"

	"github.com/dieterich-lab/dorina/bed"
	"github.com/dieterich-lab/dorina/gff"
)

// Region names one of the six region kinds a query can select, per
// spec.md's GLOSSARY.
type Region string

const (
	RegionAny        Region = "any"
	RegionCDS        Region = "CDS"
	Region3Prime     Region = "3prime"
	Region5Prime     Region = "5prime"
	RegionIntron     Region = "intron"
	RegionIntergenic Region = "intergenic"
)

// regionStems maps each Region to the file stem the data directory layout
// uses for it (spec.md §6's "genomes/<species>/<assembly>/" tree:
// all.gff cds.gff 3_utr.gff 5_utr.gff intron.gff intergenic.(gff|bed)).
var regionStems = map[Region]string{
	RegionAny:        "all",
	RegionCDS:        "cds",
	Region3Prime:     "3_utr",
	Region5Prime:     "5_utr",
	RegionIntron:     "intron",
	RegionIntergenic: "intergenic",
}

// ParseRegion validates a region name from the CLI/API surface.
func ParseRegion(s string) (Region, error) {
	r := Region(s)
	if _, ok := regionStems[r]; !ok {
		return "", fmt.Errorf("unknown region %q", s)
	}
	return r, nil
}

// RegionFile is an indexed region file: its path and whether it is BED- or
// GFF3-backed. Every region is GFF3-backed except intergenic, which the
// source ships as either (spec §9's "intergenic may be .gff or .bed").
type RegionFile struct {
	Path  string
	IsBED bool
}

// Genes returns the distinct gene identifiers (`ID=` attribute values)
// present in the given region's file, the equivalent of the Python
// implementation's `Genome.get_genes` (SPEC_FULL §4.7).
func (a *Assembly) Genes(region Region) ([]string, error) {
	rf, ok := a.Regions[region]
	if !ok {
		return nil, errors.Errorf("catalog: assembly %s/%s has no %s region file", a.Species, a.Name, region)
	}
	var recs []gff.Record
	if rf.IsBED {
		bedRecs, err := bed.ReadPath(rf.Path)
		if err != nil {
			return nil, err
		}
		recs = make([]gff.Record, len(bedRecs))
		for i, r := range bedRecs {
			recs[i] = gff.FromBED(r, string(region))
		}
	} else {
		var err error
		recs, err = gff.ReadPath(rf.Path)
		if err != nil {
			return nil, err
		}
	}
	seen := make(map[string]bool)
	var genes []string
	for _, r := range recs {
		id, ok := r.ID()
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		genes = append(genes, id)
	}
	return genes, nil
}
