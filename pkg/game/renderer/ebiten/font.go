package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// overlayFontSize matches the 20px debug text of the world view
const overlayFontSize = 20

// newOverlayFace returns the monospace face used for the overlay lines
func newOverlayFace() (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{
		Source: src,
		Size:   overlayFontSize,
	}, nil
}
