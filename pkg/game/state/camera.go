package state

import (
	"math"

	"allfarm/pkg/game/config"
)

// Zoom bounds applied to each wheel step before the configured limits
const (
	ZoomFloor   = 0.125
	ZoomCeiling = 64.0
)

// Camera is a 2D camera: screen = (world - target) * zoom + offset
type Camera struct {
	Zoom        float64
	ScaleFactor float64 // factor applied by the last wheel step

	TargetX, TargetY float64
	OffsetX, OffsetY float64

	MinZoom      float64
	MaxZoom      float64
	FollowOffset float64
}

// NewCamera creates a camera from configuration
func NewCamera(cfg config.CameraConfig) Camera {
	c := Camera{
		Zoom:         cfg.Zoom,
		ScaleFactor:  1,
		MinZoom:      cfg.MinZoom,
		MaxZoom:      cfg.MaxZoom,
		FollowOffset: cfg.FollowOffset,
	}
	c.Zoom = c.clampLimits(c.Zoom)
	return c
}

// Follow centres the camera on a world point, trailing it by FollowOffset
func (c *Camera) Follow(x, y, viewWidth, viewHeight float64) {
	c.TargetX = x + c.FollowOffset
	c.TargetY = y + c.FollowOffset
	c.OffsetX = viewWidth / 2
	c.OffsetY = viewHeight / 2
}

// ApplyWheel zooms by one wheel movement. Positive w zooms in.
func (c *Camera) ApplyWheel(w float64) {
	if w != 0 {
		factor := 1.1 + 0.25*math.Abs(w)
		if w < 0 {
			factor = 1 / factor
		}
		c.ScaleFactor = factor
		c.Zoom = clamp(c.Zoom*factor, ZoomFloor, ZoomCeiling)
	}
	c.Zoom = c.clampLimits(c.Zoom)
}

// WorldToScreen converts a world point to screen pixels
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return (x-c.TargetX)*c.Zoom + c.OffsetX, (y-c.TargetY)*c.Zoom + c.OffsetY
}

// ScreenToWorld converts screen pixels to a world point
func (c *Camera) ScreenToWorld(x, y float64) (float64, float64) {
	return (x-c.OffsetX)/c.Zoom + c.TargetX, (y-c.OffsetY)/c.Zoom + c.TargetY
}

// VisibleRect returns the world rectangle covered by a viewport
func (c *Camera) VisibleRect(viewWidth, viewHeight float64) (minX, minY, maxX, maxY float64) {
	minX, minY = c.ScreenToWorld(0, 0)
	maxX, maxY = c.ScreenToWorld(viewWidth, viewHeight)
	return minX, minY, maxX, maxY
}

func (c *Camera) clampLimits(z float64) float64 {
	return clamp(z, c.MinZoom, c.MaxZoom)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
