package generator

import (
	"math/rand"

	"allfarm/pkg/engine/world"
)

// PlotsGenerator splits the field with Binary Space Partitioning, tills a
// dirt plot in every leaf and joins the plots with dirt paths.
type PlotsGenerator struct{}

// Name returns the name of this generator
func (g *PlotsGenerator) Name() string {
	return "Plots"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	plot                *bspPlot
}

// bspPlot represents a dirt plot within a BSP leaf node
type bspPlot struct {
	x, y, width, height int
}

// Constants for BSP generation
const (
	minNodeSize = 6 // Minimum size of a BSP node
	minPlotSize = 2 // Minimum size of a plot
	plotPadding = 2 // Padding between plot and node edge
)

// Generate creates a field of dirt plots. The outermost ring of cells keeps
// the fill type.
func (g *PlotsGenerator) Generate(p Params) *world.Grid {
	grid := newField(p)
	rng := newRand(p)

	// Leave a 1 cell border of fill around the plots
	root := &bspNode{
		x:      1,
		y:      1,
		width:  p.Cols - 2,
		height: p.Rows - 2,
	}
	if root.width <= 0 || root.height <= 0 {
		return grid
	}

	splitBSP(rng, root, minNodeSize)
	createPlots(rng, root)
	tillPlots(grid, root)
	connectPlots(rng, grid, root)

	return grid
}

// splitBSP recursively splits a BSP node
func splitBSP(rng *rand.Rand, node *bspNode, minSize int) {
	canSplitWidth := node.width >= minSize*2
	canSplitHeight := node.height >= minSize*2

	// Decide split direction
	var splitHorizontal bool
	switch {
	case node.width > node.height && canSplitWidth:
		splitHorizontal = false
	case node.height > node.width && canSplitHeight:
		splitHorizontal = true
	case canSplitWidth && canSplitHeight:
		splitHorizontal = rng.Intn(2) == 0
	case canSplitWidth:
		splitHorizontal = false
	case canSplitHeight:
		splitHorizontal = true
	default:
		return // Too small to split
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(rng, node.left, minSize)
	splitBSP(rng, node.right, minSize)
}

// createPlots creates plots in leaf nodes that are large enough
func createPlots(rng *rand.Rand, node *bspNode) {
	if node.left != nil || node.right != nil {
		createPlots(rng, node.left)
		createPlots(rng, node.right)
		return
	}

	maxWidth := node.width - plotPadding
	maxHeight := node.height - plotPadding
	if maxWidth < minPlotSize || maxHeight < minPlotSize {
		return
	}

	plotWidth := minPlotSize + rng.Intn(maxWidth-minPlotSize+1)
	plotHeight := minPlotSize + rng.Intn(maxHeight-minPlotSize+1)

	node.plot = &bspPlot{
		x:      node.x + rng.Intn(node.width-plotWidth),
		y:      node.y + rng.Intn(node.height-plotHeight),
		width:  plotWidth,
		height: plotHeight,
	}
}

// tillPlots turns plot cells into dirt
func tillPlots(grid *world.Grid, root *bspNode) {
	for _, plot := range collectPlots(root) {
		for row := plot.y; row < plot.y+plot.height; row++ {
			for col := plot.x; col < plot.x+plot.width; col++ {
				grid.SetCellType(col, row, world.Dirt)
			}
		}
	}
}

// connectPlots joins a plot from each subtree with an L-shaped dirt path
func connectPlots(rng *rand.Rand, grid *world.Grid, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftPlot := getPlot(rng, node.left)
	rightPlot := getPlot(rng, node.right)

	if leftPlot != nil && rightPlot != nil {
		leftCenterX := leftPlot.x + leftPlot.width/2
		leftCenterY := leftPlot.y + leftPlot.height/2
		rightCenterX := rightPlot.x + rightPlot.width/2
		rightCenterY := rightPlot.y + rightPlot.height/2

		if rng.Intn(2) == 0 {
			// Horizontal first, then vertical
			tillPathHorizontal(grid, leftCenterY, leftCenterX, rightCenterX)
			tillPathVertical(grid, rightCenterX, leftCenterY, rightCenterY)
		} else {
			// Vertical first, then horizontal
			tillPathVertical(grid, leftCenterX, leftCenterY, rightCenterY)
			tillPathHorizontal(grid, rightCenterY, leftCenterX, rightCenterX)
		}
	}

	connectPlots(rng, grid, node.left)
	connectPlots(rng, grid, node.right)
}

func tillPathHorizontal(grid *world.Grid, row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		grid.SetCellType(col, row, world.Dirt)
	}
}

func tillPathVertical(grid *world.Grid, col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		grid.SetCellType(col, row, world.Dirt)
	}
}

// getPlot returns a plot from a subtree (picks randomly from leaves)
func getPlot(rng *rand.Rand, node *bspNode) *bspPlot {
	if node == nil {
		return nil
	}
	if node.plot != nil {
		return node.plot
	}

	leftPlot := getPlot(rng, node.left)
	rightPlot := getPlot(rng, node.right)

	if leftPlot != nil && rightPlot != nil {
		if rng.Intn(2) == 0 {
			return leftPlot
		}
		return rightPlot
	}
	if leftPlot != nil {
		return leftPlot
	}
	return rightPlot
}

// collectPlots collects all plots from the BSP tree
func collectPlots(node *bspNode) []*bspPlot {
	if node == nil {
		return nil
	}
	var plots []*bspPlot
	if node.plot != nil {
		plots = append(plots, node.plot)
	}
	plots = append(plots, collectPlots(node.left)...)
	plots = append(plots, collectPlots(node.right)...)
	return plots
}
