package sink

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/puzzlecut/puzzlecut/pkg/errors"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderPNG(t *testing.T) {
	p := buildFixture(t, 2, 2)

	data, err := RenderPNG(p)
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestRenderPNGWithTexture(t *testing.T) {
	p := buildFixture(t, 2, 2)
	tex := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			tex.Set(x, y, color.RGBA{R: uint8(x * 6), G: uint8(y * 8), A: 255})
		}
	}

	data, err := RenderPNG(p, WithTexture(tex), WithScale(0.5))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestPieceSprite(t *testing.T) {
	p := buildFixture(t, 2, 2)

	data, err := PieceSprite(p, 0, 1, nil)
	if err != nil {
		t.Fatalf("PieceSprite() error = %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestPieceSpriteOutOfRange(t *testing.T) {
	p := buildFixture(t, 2, 2)

	_, err := PieceSprite(p, 5, 0, nil)
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("PieceSprite(5,0) error = %v, want code %s", err, errors.ErrCodeNotFound)
	}
}
