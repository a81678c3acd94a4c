// Package gfx provides the image side of the kernel: loading assets, the
// transforms applied to actor-owned images (rotate, scale, crop), sprite-sheet
// slicing, and the visual content variants actors can display.
package gfx

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	xdraw "golang.org/x/image/draw"
)

// Load decodes the image at path into an RGBA buffer anchored at (0, 0).
// A missing or corrupt asset is a construction-time error for the caller.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gfx: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("gfx: cannot decode %s: %w", path, err)
	}
	return Clone(img), nil
}

// Size returns the width and height of an image. Nil has size 0x0.
func Size(img image.Image) (int, int) {
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Clone copies any image into a fresh RGBA buffer anchored at (0, 0).
func Clone(src image.Image) *image.RGBA {
	if src == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return dst
}

// Solid returns a w x h image filled with c.
func Solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
	return img
}

// Bordered returns a w x h image filled with fill and outlined with border.
func Bordered(w, h int, fill, border color.Color) *image.RGBA {
	img := Solid(w, h, fill)
	for x := 0; x < w; x++ {
		img.Set(x, 0, border)
		img.Set(x, h-1, border)
	}
	for y := 0; y < h; y++ {
		img.Set(0, y, border)
		img.Set(w-1, y, border)
	}
	return img
}

// Disc returns a (2r) x (2r) image with a filled circle of color c on a
// transparent background.
func Disc(r int, c color.Color) *image.RGBA {
	d := 2 * r
	img := image.NewRGBA(image.Rect(0, 0, d, d))
	rr := float64(r) * float64(r)
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx := float64(x) - float64(r) + 0.5
			dy := float64(y) - float64(r) + 0.5
			if dx*dx+dy*dy <= rr {
				img.Set(x, y, c)
			}
		}
	}
	return img
}
