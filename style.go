package gizmo

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorID indexes Style.Colors.
type ColorID int

const (
	ColorDirectionX ColorID = iota
	ColorDirectionY
	ColorDirectionZ
	ColorPlaneX
	ColorPlaneY
	ColorPlaneZ
	ColorSelection
	ColorInactive
	ColorTranslationLine
	ColorScaleLine
	ColorRotationUsingBorder
	ColorRotationUsingFill
	ColorHatchedAxisLines
	ColorText
	ColorTextShadow
	ColorScreenTranslate
	ColorCount
)

// Style controls the look of every gizmo drawn through a Context.
type Style struct {
	TranslationLineThickness   float32
	TranslationLineArrowSize   float32
	RotationLineThickness      float32
	RotationOuterLineThickness float32
	ScaleLineThickness         float32
	ScaleLineCircleSize        float32
	HatchedAxisLineThickness   float32
	CenterCircleSize           float32
	// Pixel offset of the value labels from the gizmo origin.
	AnnotationOffset float32

	Colors [ColorCount]color.NRGBA
}

func DefaultStyle() Style {
	s := Style{
		TranslationLineThickness:   5,
		TranslationLineArrowSize:   8,
		RotationLineThickness:      5,
		RotationOuterLineThickness: 7,
		ScaleLineThickness:         5,
		ScaleLineCircleSize:        8,
		HatchedAxisLineThickness:   6,
		CenterCircleSize:           6,
		AnnotationOffset:           14,
	}
	s.SetAxisHues(0, 120, 240, 0.666)

	s.Colors[ColorSelection] = nrgba(colorful.Color{R: 1, G: 0.5, B: 0.062}, 0.541)
	s.Colors[ColorInactive] = nrgba(colorful.Color{R: 0.6, G: 0.6, B: 0.6}, 0.6)
	s.Colors[ColorTranslationLine] = nrgba(colorful.Color{R: 0.666, G: 0.666, B: 0.666}, 0.666)
	s.Colors[ColorScaleLine] = nrgba(colorful.Color{R: 0.25, G: 0.25, B: 0.25}, 1)
	s.Colors[ColorRotationUsingBorder] = nrgba(colorful.Color{R: 1, G: 0.5, B: 0.062}, 1)
	s.Colors[ColorRotationUsingFill] = nrgba(colorful.Color{R: 1, G: 0.5, B: 0.062}, 0.5)
	s.Colors[ColorHatchedAxisLines] = nrgba(colorful.Color{}, 0.5)
	s.Colors[ColorText] = nrgba(colorful.Color{R: 1, G: 1, B: 1}, 1)
	s.Colors[ColorTextShadow] = nrgba(colorful.Color{}, 1)
	s.Colors[ColorScreenTranslate] = nrgba(colorful.Color{R: 0.8, G: 0.5, B: 0.3}, 0.8)
	return s
}

// SetAxisHues recolors the axis and plane handles from HSV hues in degrees
// sharing one value. Plane quads reuse the axis color at reduced alpha.
func (s *Style) SetAxisHues(x, y, z, value float64) {
	for i, h := range [3]float64{x, y, z} {
		c := colorful.Hsv(h, 1, value)
		s.Colors[ColorDirectionX+ColorID(i)] = nrgba(c, 1)
		s.Colors[ColorPlaneX+ColorID(i)] = nrgba(c, 0.38)
	}
}

// Dimmed blends c toward the inactive color in Lab space, keeping a hint
// of its hue. t=1 yields the inactive color.
func (s *Style) Dimmed(c color.NRGBA, t float64) color.NRGBA {
	from, _ := colorful.MakeColor(opaque(c))
	to, _ := colorful.MakeColor(opaque(s.Colors[ColorInactive]))
	a := float64(c.A) + (float64(s.Colors[ColorInactive].A)-float64(c.A))*t
	return nrgba(from.BlendLab(to, t).Clamped(), a/255)
}

func (s *Style) color(id ColorID) color.NRGBA {
	return s.Colors[id]
}

func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}
