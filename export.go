package sashiko

import (
	"image"
	"io"

	xdraw "golang.org/x/image/draw"
)

// ExportPNG renders the pattern and writes it to w as PNG. scale is an
// integer resolution multiplier applied to the rendered geometry (the
// artboard plus its one-tile margin), so exports stay sharp at any size;
// values below 1 are clamped to 1. The on-screen surface is untouched.
func ExportPNG(p *Pattern, app Appearance, scale int, w io.Writer) error {
	if err := p.Geometry.Validate(); err != nil {
		return err
	}
	if scale < 1 {
		scale = 1
	}

	cv := NewSoftCanvas(p.Geometry, WithScale(float64(scale)))
	NewRenderer(cv, app).Redraw(p, nil)
	return cv.Pixmap().EncodePNG(w)
}

// Thumbnail renders the pattern and downsamples it so the longer side is at
// most maxSide pixels, for pattern-browser previews.
func Thumbnail(p *Pattern, app Appearance, maxSide int) (image.Image, error) {
	if err := p.Geometry.Validate(); err != nil {
		return nil, err
	}
	if maxSide < 1 {
		maxSide = 1
	}

	cv := NewSoftCanvas(p.Geometry)
	NewRenderer(cv, app).Redraw(p, nil)
	src := cv.Image()

	b := src.Bounds()
	long := max(b.Dx(), b.Dy())
	if long <= maxSide {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*maxSide/long, b.Dy()*maxSide/long))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst, nil
}
