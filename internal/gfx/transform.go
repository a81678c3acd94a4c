package gfx

import (
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// sizeEpsilon absorbs floating noise in sin/cos so that a quarter turn of a
// 20x10 image is 10x20, not 11x21.
const sizeEpsilon = 1e-9

// RotatedSize returns the bounding size of a w x h image rotated by degrees.
func RotatedSize(w, h int, degrees float64) (int, int) {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	fw, fh := float64(w), float64(h)
	nw := math.Ceil(math.Abs(fw*cos) + math.Abs(fh*sin) - sizeEpsilon)
	nh := math.Ceil(math.Abs(fw*sin) + math.Abs(fh*cos) - sizeEpsilon)
	return int(math.Max(nw, 0)), int(math.Max(nh, 0))
}

// Rotate returns src rotated counterclockwise by degrees around its center.
// The result is sized to the rotated bounding box; uncovered pixels are
// transparent. A whole number of turns returns an unrotated copy.
func Rotate(src image.Image, degrees float64) *image.RGBA {
	if src == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	if math.Mod(degrees, 360) == 0 {
		return Clone(src)
	}

	sb := src.Bounds()
	nw, nh := RotatedSize(sb.Dx(), sb.Dy(), degrees)
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))

	sin, cos := math.Sincos(degrees * math.Pi / 180)
	scx := float64(sb.Min.X) + float64(sb.Dx())/2
	scy := float64(sb.Min.Y) + float64(sb.Dy())/2
	dcx, dcy := float64(nw)/2, float64(nh)/2

	// Source to destination mapping; y grows downward, so a counterclockwise
	// turn sends +x toward -y.
	m := f64.Aff3{
		cos, sin, dcx - cos*scx - sin*scy,
		-sin, cos, dcy + sin*scx - cos*scy,
	}
	xdraw.NearestNeighbor.Transform(dst, m, src, sb, xdraw.Over, nil)
	return dst
}

// Scale returns src resized to exactly w x h.
func Scale(src image.Image, w, h int) *image.RGBA {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if src == nil || w == 0 || h == 0 {
		return dst
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// ScaleBy returns src resized by factor, rounding each dimension.
func ScaleBy(src image.Image, factor float64) *image.RGBA {
	w, h := Size(src)
	return Scale(src, int(math.Round(float64(w)*factor)), int(math.Round(float64(h)*factor)))
}

// Crop copies the region (left, top, width, height) out of src.
// An origin outside the image falls back to (0, 0), and a size that is not
// strictly smaller than the image falls back to the full image. The region is
// finally clipped to the image bounds.
func Crop(src image.Image, left, top, width, height int) *image.RGBA {
	w, h := Size(src)
	if left < 0 || top < 0 || left >= w || top >= h {
		left, top = 0, 0
	}
	if width <= 0 || height <= 0 || width >= w || height >= h {
		width, height = w, h
	}

	b := src.Bounds()
	r := image.Rect(left, top, left+width, top+height).Add(b.Min).Intersect(b)
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, r.Min, xdraw.Src)
	return dst
}

// SliceSheet cuts count cells of cellW x cellH out of a horizontal strip of
// sheet starting at (left, top), scaling each cell by scalar.
// Cells that fall outside the sheet are an error.
func SliceSheet(sheet image.Image, count, cellW, cellH, left, top int, scalar float64) ([]image.Image, error) {
	if count <= 0 || cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("gfx: invalid sheet layout: %d cells of %dx%d", count, cellW, cellH)
	}
	if sheet == nil {
		return nil, fmt.Errorf("gfx: no sheet image")
	}

	b := sheet.Bounds()
	frames := make([]image.Image, 0, count)
	x := left
	for i := 0; i < count; i++ {
		cell := image.Rect(x, top, x+cellW, top+cellH).Add(b.Min)
		if !cell.In(b) {
			return nil, fmt.Errorf("gfx: sheet cell %d at (%d, %d) exceeds %dx%d sheet", i, x, top, b.Dx(), b.Dy())
		}

		frame := image.NewRGBA(image.Rect(0, 0, cellW, cellH))
		xdraw.Draw(frame, frame.Bounds(), sheet, cell.Min, xdraw.Src)
		if scalar != 1 && scalar > 0 {
			frames = append(frames, ScaleBy(frame, scalar))
		} else {
			frames = append(frames, frame)
		}

		// Next cell starts at the top right corner of this one
		x += cellW
	}
	return frames, nil
}
