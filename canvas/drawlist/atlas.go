package drawlist

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const atlasSize = 256

type glyph struct {
	uvMin, uvMax [2]float32
	size, off    [2]float32
	adv          float32
}

// Atlas packs the printable ASCII glyphs of a face into one alpha texture.
// The top-left 2x2 texels are opaque and serve as the UV of solid shapes.
type Atlas struct {
	Image   *image.Alpha
	glyphs  map[rune]glyph
	ascent  float32
	whiteUV [2]float32
}

func NewAtlas(face font.Face) *Atlas {
	img := image.NewAlpha(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(img, image.Rect(0, 0, 2, 2), image.Opaque, image.Point{}, draw.Src)

	a := &Atlas{
		Image:   img,
		glyphs:  make(map[rune]glyph),
		ascent:  float32(face.Metrics().Ascent.Ceil()),
		whiteUV: [2]float32{1.0 / atlasSize, 1.0 / atlasSize},
	}

	x, y := 4, 2
	rowHeight := 0
	for r := rune(32); r < 127; r++ {
		bounds, mask, mp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}
		w, h := bounds.Dx(), bounds.Dy()
		if x+w >= atlasSize {
			x = 2
			y += rowHeight + 2
			rowHeight = 0
		}
		if y+h >= atlasSize {
			break
		}
		draw.Draw(img, image.Rect(x, y, x+w, y+h), mask, mp, draw.Src)

		a.glyphs[r] = glyph{
			uvMin: [2]float32{float32(x) / atlasSize, float32(y) / atlasSize},
			uvMax: [2]float32{float32(x+w) / atlasSize, float32(y+h) / atlasSize},
			size:  [2]float32{float32(w), float32(h)},
			off:   [2]float32{float32(bounds.Min.X), float32(bounds.Min.Y)},
			adv:   float32(adv) / 64,
		}
		x += w + 2
		rowHeight = max(rowHeight, h)
	}
	return a
}
