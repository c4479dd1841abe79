package engine

// emit finalizes the run at StateEmitted and returns the joined hits,
// sorted by region coordinates for deterministic output (spec §4.5's
// ordering guarantee; tie-break is inherited from the algebra package's
// stream ordering, already applied by join's underlying operators).
func (r *Run) emit() []Hit {
	r.state = StateEmitted
	return r.hits
}
