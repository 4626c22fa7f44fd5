package renderer

import (
	"image/color"

	"allfarm/pkg/game/atlas"
)

// Surface is the set of drawing primitives a backend provides.
// World-space calls are made between BeginCamera and EndCamera.
type Surface interface {
	// Clear fills the whole target
	Clear(c color.Color)

	// BeginCamera starts drawing in world space through the camera
	BeginCamera(f *Frame)
	// EndCamera returns to screen space
	EndCamera()

	// DrawRegion blits an atlas region into a world rectangle
	DrawRegion(src atlas.Region, dst Rect)

	// FillRect fills a world rectangle
	FillRect(r Rect, c color.Color)

	// StrokeLine draws a world-space line one pixel wide
	StrokeLine(l Line, c color.Color)

	// Text prints screen-space text with its top-left corner at (x, y)
	Text(s string, x, y int)
}

// Execute draws a frame on a surface
func Execute(f *Frame, s Surface) {
	s.Clear(ColorBackground)

	s.BeginCamera(f)
	for _, t := range f.Tiles {
		s.DrawRegion(t.Src, t.Dst)
	}
	for _, l := range f.GridLines {
		s.StrokeLine(l, ColorGridLine)
	}
	s.DrawRegion(f.Player.Src, f.Player.Dst)
	if f.Hover != nil {
		s.FillRect(*f.Hover, ColorHover)
	}
	s.EndCamera()

	for i, line := range f.Overlay {
		s.Text(line, OverlayX, OverlayY+i*OverlaySpacing)
	}
}
