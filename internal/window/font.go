package window

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/tomz197/spacerocks/internal/config"
)

// NewMessageFace returns the face used for the win/lose message.
func NewMessageFace() (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load message font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: config.MessageFontSize}, nil
}

// drawMessage draws msg centred on the screen in tomato.
func drawMessage(screen *ebiten.Image, face text.Face, msg string) {
	if msg == "" || face == nil {
		return
	}
	b := screen.Bounds()
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.Dx())/2, float64(b.Dy())/2)
	op.ColorScale.ScaleWithColor(colornames.Tomato)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, msg, face, op)
}
