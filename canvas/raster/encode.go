package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format is an output image encoding.
type Format int

const (
	PNG Format = iota
	WebP
	TGA
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case WebP:
		return "webp"
	case TGA:
		return "tga"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatForPath picks the encoding from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".webp":
		return WebP, nil
	case ".tga":
		return TGA, nil
	}
	return PNG, fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
}

func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("encode: unknown format %v", f)
	}
	if err != nil {
		return fmt.Errorf("encode %v: %w", f, err)
	}
	return nil
}
