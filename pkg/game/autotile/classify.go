package autotile

// Classify returns the shape state of the tile at (col, row).
// The position itself must be inside the grid; neighbours outside it count as Empty.
// The result is Center when no rule matches.
func Classify(g Grid, col, row int) ShapeState {
	state, _ := ClassifyNeighborhood(Sample(g, col, row))
	return state
}

// Explain is Classify plus the tier whose rule produced the state
func Explain(g Grid, col, row int) (ShapeState, Tier) {
	return ClassifyNeighborhood(Sample(g, col, row))
}

// ClassifyNeighborhood runs the ordered tiers for nb.Self; the first matching rule wins.
func ClassifyNeighborhood(nb Neighborhood) (ShapeState, Tier) {
	rs, ok := rulesets[nb.Self]
	if !ok {
		return Center, TierDefault
	}

	occupied := nb.Occupied()
	for _, t := range rs.tiers {
		for _, r := range t.rules {
			if r.matches(nb, occupied, rs.partner) {
				return r.state, t.id
			}
		}
	}
	return Center, TierDefault
}
