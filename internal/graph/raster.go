package graph

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// RasterSurface paints onto an in-memory RGBA image; one graph unit is one pixel.
type RasterSurface struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[float64]font.Face
}

// NewRasterSurface allocates a width×height image.
func NewRasterSurface(width, height int) (*RasterSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster size must be positive, got %dx%d", width, height)
	}
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	return &RasterSurface{
		dc:    gg.NewContext(width, height),
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

func (r *RasterSurface) Size() (float64, float64) {
	return float64(r.dc.Width()), float64(r.dc.Height())
}

func (r *RasterSurface) Clear(c Color) {
	r.dc.SetHexColor(string(c))
	r.dc.Clear()
}

func (r *RasterSurface) Line(x0, y0, x1, y1 float64, c Color, width float64) {
	r.dc.SetHexColor(string(c))
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(x0, y0, x1, y1)
	r.dc.Stroke()
}

func (r *RasterSurface) FillCircle(cx, cy, radius float64, c Color) {
	r.dc.SetHexColor(string(c))
	r.dc.DrawCircle(cx, cy, radius)
	r.dc.Fill()
}

func (r *RasterSurface) StrokeCircle(cx, cy, radius float64, c Color, width float64) {
	r.dc.SetHexColor(string(c))
	r.dc.SetLineWidth(width)
	r.dc.DrawCircle(cx, cy, radius)
	r.dc.Stroke()
}

func (r *RasterSurface) Text(x, y float64, s string, c Color, size float64, align Align) {
	r.dc.SetFontFace(r.face(size))
	r.dc.SetHexColor(string(c))
	if align == AlignCenter {
		r.dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
		return
	}
	r.dc.DrawString(s, x, y)
}

func (r *RasterSurface) face(size float64) font.Face {
	// Quarter-point buckets keep the cache small while zooming.
	size = math.Max(1, math.Round(size*4)/4)
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(r.font, &truetype.Options{Size: size})
	r.faces[size] = f
	return f
}

// Image exposes the painted frame.
func (r *RasterSurface) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the frame as PNG.
func (r *RasterSurface) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}
