package autotile

import "allfarm/pkg/engine/world"

const (
	n  = world.North
	ne = world.NorthEast
	e  = world.East
	se = world.SouthEast
	s  = world.South
	sw = world.SouthWest
	w  = world.West
	nw = world.NorthWest
)

var (
	orthogonals = Bits(n, e, s, w)
	diagonals   = Bits(ne, se, sw, nw)
)

// Tier identifies the priority group a rule belongs to
type Tier int

// Tiers in evaluation order. Patterns overlap across tiers, so the order decides
// the result.
const (
	TierDiagonal Tier = iota
	TierConnector
	TierCorner
	TierTransition
	TierEdge
	TierRun
	TierIsolated
	TierDefault
)

// String returns the name of the tier
func (t Tier) String() string {
	switch t {
	case TierDiagonal:
		return "diagonal"
	case TierConnector:
		return "connector"
	case TierCorner:
		return "corner"
	case TierTransition:
		return "transition"
	case TierEdge:
		return "edge"
	case TierRun:
		return "run"
	case TierIsolated:
		return "isolated"
	default:
		return "default"
	}
}

// rule matches when every present neighbour is occupied, every absent neighbour
// is Empty and the optional predicate holds.
type rule struct {
	state   ShapeState
	present Mask
	absent  Mask
	when    func(nb Neighborhood, partner world.TileType) bool
}

func (r rule) matches(nb Neighborhood, occupied Mask, partner world.TileType) bool {
	if occupied&r.present != r.present || occupied&r.absent != 0 {
		return false
	}
	return r.when == nil || r.when(nb, partner)
}

type tier struct {
	id    Tier
	rules []rule
}

// ruleset is the ordered rule list for one tile type. partner is the material
// the transition tier blends into.
type ruleset struct {
	partner world.TileType
	tiers   []tier
}

func shape(state ShapeState, present, absent Mask) rule {
	return rule{state: state, present: present, absent: absent}
}

// surrounded matches all four orthogonals present and exactly the kept diagonals present
func surrounded(state ShapeState, keep ...world.Direction) rule {
	kept := Bits(keep...)
	return shape(state, orthogonals|kept, diagonals&^kept)
}

// blend matches all four orthogonals present plus a partner-type predicate
func blend(state ShapeState, when func(nb Neighborhood, partner world.TileType) bool) rule {
	return rule{state: state, present: orthogonals, when: when}
}

var diagonalTier = tier{TierDiagonal, []rule{
	surrounded(Cross),
	surrounded(DiagonalRising, ne, sw),
	surrounded(DiagonalFalling, nw, se),
	surrounded(NotchNorthWest, ne, sw, se),
	surrounded(NotchNorthEast, nw, sw, se),
	surrounded(NotchSouthWest, nw, ne, se),
	surrounded(NotchSouthEast, nw, ne, sw),
	surrounded(OpenEast, nw, sw),
	surrounded(OpenWest, ne, se),
	surrounded(OpenNorth, sw, se),
	surrounded(OpenSouth, nw, ne),
	surrounded(KeepNorthEast, ne),
	surrounded(KeepNorthWest, nw),
	surrounded(KeepSouthEast, se),
	surrounded(KeepSouthWest, sw),
}}

var connectorTier = tier{TierConnector, []rule{
	shape(BranchNorthOpenSouthEast, Bits(s, e, w, sw), Bits(n, se)),
	shape(BranchNorthOpenSouthWest, Bits(s, e, w, se), Bits(n, sw)),
	shape(BranchSouthOpenNorthEast, Bits(n, e, w, nw), Bits(s, ne)),
	shape(BranchSouthOpenNorthWest, Bits(n, e, w, ne), Bits(s, nw)),
	shape(BranchWestOpenNorthEast, Bits(n, s, e, se), Bits(w, ne)),
	shape(BranchWestOpenSouthEast, Bits(n, s, e, ne), Bits(w, se)),
	shape(BranchEastOpenNorthWest, Bits(n, s, w, sw), Bits(e, nw)),
	shape(BranchEastOpenSouthWest, Bits(n, s, w, nw), Bits(e, sw)),

	shape(SpurNorthWest, Bits(s, e), Bits(n, w, se)),
	shape(SpurNorthEast, Bits(s, w), Bits(n, e, sw)),
	shape(SpurSouthWest, Bits(n, e), Bits(s, w, ne)),
	shape(SpurSouthEast, Bits(n, w), Bits(s, e, nw)),

	shape(StubNorth, Bits(s, e, w), Bits(n, sw, se)),
	shape(StubSouth, Bits(n, e, w), Bits(s, nw, ne)),
	shape(StubWest, Bits(n, s, e), Bits(w, ne, se)),
	shape(StubEast, Bits(n, s, w), Bits(e, nw, sw)),
}}

var cornerTier = tier{TierCorner, []rule{
	shape(CornerNorthWest, Bits(e, s), Bits(n, w)),
	shape(CornerNorthEast, Bits(w, s), Bits(n, e)),
	shape(CornerSouthWest, Bits(e, n), Bits(s, w)),
	shape(CornerSouthEast, Bits(w, n), Bits(s, e)),
}}

// diagonalBlend matches partner material on diagonal d but not on the two
// orthogonals next to it.
func diagonalBlend(d, a, b world.Direction) func(nb Neighborhood, partner world.TileType) bool {
	return func(nb Neighborhood, partner world.TileType) bool {
		return nb.Is(d, partner) && !nb.Is(a, partner) && !nb.Is(b, partner)
	}
}

func sideBlend(dirs ...world.Direction) func(nb Neighborhood, partner world.TileType) bool {
	return func(nb Neighborhood, partner world.TileType) bool {
		for _, d := range dirs {
			if !nb.Is(d, partner) {
				return false
			}
		}
		return true
	}
}

var transitionTier = tier{TierTransition, []rule{
	blend(TransitionSouthEast, diagonalBlend(se, s, e)),
	blend(TransitionSouthWest, diagonalBlend(sw, s, w)),
	blend(TransitionNorthEast, diagonalBlend(ne, n, e)),
	blend(TransitionNorthWest, diagonalBlend(nw, n, w)),
	blend(TransitionHorizontal, sideBlend(w, e)),
	blend(TransitionVertical, sideBlend(n, s)),
	blend(TransitionSouth, sideBlend(s)),
	blend(TransitionNorth, sideBlend(n)),
	blend(TransitionWest, sideBlend(w)),
	blend(TransitionEast, sideBlend(e)),
}}

var edgeTier = tier{TierEdge, []rule{
	shape(EdgeNorth, Bits(s, e, w), Bits(n)),
	shape(EdgeSouth, Bits(n, e, w), Bits(s)),
	shape(EdgeWest, Bits(n, s, e), Bits(w)),
	shape(EdgeEast, Bits(n, s, w), Bits(e)),
}}

var runTier = tier{TierRun, []rule{
	shape(RowWest, Bits(e), Bits(n, s, w)),
	shape(RowEast, Bits(w), Bits(n, s, e)),
	shape(RowMiddle, Bits(w, e), Bits(n, s)),
	shape(ColumnNorth, Bits(s), Bits(w, e, n)),
	shape(ColumnSouth, Bits(n), Bits(w, e, s)),
	shape(ColumnMiddle, Bits(n, s), Bits(w, e)),
}}

var isolatedTier = tier{TierIsolated, []rule{
	shape(Isolated, 0, orthogonals),
}}

// rulesets maps each classified tile type to its ordered tiers. Types without an
// entry always classify as Center.
var rulesets = map[world.TileType]ruleset{
	world.Grass: {
		partner: world.Dirt,
		tiers: []tier{
			diagonalTier,
			connectorTier,
			cornerTier,
			transitionTier,
			edgeTier,
			runTier,
			isolatedTier,
		},
	},
	world.Dirt: {
		partner: world.Empty,
		tiers:   []tier{cornerTier, edgeTier},
	},
}
