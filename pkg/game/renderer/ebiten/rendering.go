package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"allfarm/pkg/game/atlas"
	"allfarm/pkg/game/renderer"
	"allfarm/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	frame := renderer.Build(e.game, e.table, e.catalog)
	renderer.Execute(&frame, &surface{
		screen: screen,
		atlas:  e.atlasImage,
		face:   e.face,
	})
}

// surface draws renderer commands onto an Ebiten image
type surface struct {
	screen *ebiten.Image
	atlas  *ebiten.Image
	face   *text.GoTextFace

	// camera is set between BeginCamera and EndCamera
	camera *state.Camera
	view   ebiten.GeoM
}

func (s *surface) Clear(c color.Color) {
	s.screen.Fill(c)
}

func (s *surface) BeginCamera(f *renderer.Frame) {
	s.camera = &f.Camera
	s.view.Reset()
	s.view.Translate(-f.Camera.TargetX, -f.Camera.TargetY)
	s.view.Scale(f.Camera.Zoom, f.Camera.Zoom)
	s.view.Translate(f.Camera.OffsetX, f.Camera.OffsetY)
}

func (s *surface) EndCamera() {
	s.camera = nil
	s.view.Reset()
}

// DrawRegion scales the atlas region to the destination rectangle
func (s *surface) DrawRegion(src atlas.Region, dst renderer.Rect) {
	if s.atlas == nil || src.IsZero() {
		return
	}
	sub := s.atlas.SubImage(src.Rect()).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(dst.X, dst.Y)
	op.GeoM.Concat(s.view)
	s.screen.DrawImage(sub, op)
}

func (s *surface) FillRect(r renderer.Rect, c color.Color) {
	x, y, w, h := s.toScreen(r.X, r.Y, r.W, r.H)
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *surface) StrokeLine(l renderer.Line, c color.Color) {
	x1, y1 := s.view.Apply(l.X1, l.Y1)
	x2, y2 := s.view.Apply(l.X2, l.Y2)
	vector.StrokeLine(s.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, c, false)
}

func (s *surface) Text(str string, x, y int) {
	if s.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(renderer.ColorOverlay)
	text.Draw(s.screen, str, s.face, op)
}

// toScreen maps a world rectangle through the camera
func (s *surface) toScreen(x, y, w, h float64) (float64, float64, float64, float64) {
	if s.camera == nil {
		return x, y, w, h
	}
	sx, sy := s.camera.WorldToScreen(x, y)
	return sx, sy, w * s.camera.Zoom, h * s.camera.Zoom
}
