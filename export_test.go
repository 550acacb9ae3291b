package sashiko

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

func TestExportPNG(t *testing.T) {
	p := NewPattern(smallGeometry())
	p.Add(NewStitch(V(1, 1), V(3, 3), true))

	var buf bytes.Buffer
	if err := ExportPNG(p, DefaultAppearance(), 1, &buf); err != nil {
		t.Fatalf("ExportPNG() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 160 || b.Dy() != 160 {
		t.Errorf("export size = %dx%d, want 160x160", b.Dx(), b.Dy())
	}
}

func TestExportPNG_Scale(t *testing.T) {
	p := NewPattern(smallGeometry())

	var buf bytes.Buffer
	if err := ExportPNG(p, DefaultAppearance(), 3, &buf); err != nil {
		t.Fatalf("ExportPNG() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding export: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 480 || b.Dy() != 480 {
		t.Errorf("export size = %dx%d, want 480x480", b.Dx(), b.Dy())
	}
}

func TestExportPNG_InvalidGeometry(t *testing.T) {
	p := NewPattern(Geometry{})

	var buf bytes.Buffer
	err := ExportPNG(p, DefaultAppearance(), 1, &buf)
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("ExportPNG() error = %v, want ErrInvalidGeometry", err)
	}
	if buf.Len() != 0 {
		t.Errorf("ExportPNG() wrote %d bytes on error, want 0", buf.Len())
	}
}

func TestThumbnail(t *testing.T) {
	p := NewPattern(smallGeometry())
	p.Add(NewStitch(V(0, 0), V(4, 4), true))

	img, err := Thumbnail(p, DefaultAppearance(), 64)
	if err != nil {
		t.Fatalf("Thumbnail() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("thumbnail size = %dx%d, want 64x64", b.Dx(), b.Dy())
	}
}

func TestThumbnail_NoUpscale(t *testing.T) {
	p := NewPattern(smallGeometry())

	img, err := Thumbnail(p, DefaultAppearance(), 4096)
	if err != nil {
		t.Fatalf("Thumbnail() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 160 {
		t.Errorf("thumbnail size = %dx%d, want the unscaled 160x160", b.Dx(), b.Dy())
	}
}
