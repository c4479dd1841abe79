package catalog

// Catalog is the immutable index built once by Load: which region files
// back which assembly, and which experiment BEDs back which regulator id
// (spec.md §3 "Catalog"). Rebuilding requires a fresh Load call; nothing in
// this package mutates a Catalog after it is returned.
type Catalog struct {
	// Genomes maps species -> assembly name -> Assembly.
	Genomes map[string]map[string]*Assembly
	// Regulators maps species -> assembly -> regulator id -> Experiment.
	Regulators map[string]map[string]map[string]*Experiment
}

// Assembly is one genome build's region-file index plus chromosome sizes.
type Assembly struct {
	Species     string
	Name        string
	Regions     map[Region]RegionFile
	ChromSizes  map[string]int64
	Description map[string]any
}

// Experiment is one regulator's metadata plus the BED file backing its
// binding-site intervals. Multiple ids can share one BED when their JSON
// stems match (spec.md §3).
type Experiment struct {
	ID       string
	Species  string
	Assembly string
	BEDFile  string
	JSONFile string
	Fields   map[string]any
}

// LookupAssembly finds an assembly by species-agnostic name, returning the
// first species that defines it. Most callers know the species already
// (resolved from the query); this exists for the `genomes`/`regulators`
// listing surface and the CLI's bare `<assembly>` argument (spec §6, which
// names assemblies without a species qualifier).
func (c *Catalog) LookupAssembly(name string) (*Assembly, bool) {
	for _, assemblies := range c.Genomes {
		if a, ok := assemblies[name]; ok {
			return a, true
		}
	}
	return nil, false
}

// LookupRegulator finds a regulator id within a given assembly, across
// whichever species defines that assembly (mirrors LookupAssembly).
func (c *Catalog) LookupRegulator(assembly, id string) (*Experiment, bool) {
	for _, assemblies := range c.Regulators {
		if regs, ok := assemblies[assembly]; ok {
			if e, ok := regs[id]; ok {
				return e, true
			}
		}
	}
	return nil, false
}
