package runner

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/vovakirdan/scenekit/internal/gfx"
)

var (
	runnerColor = gfx.MustColor("white")
	railColor   = gfx.MustColor("saddlebrown")
)

// runnerSheet draws a horizontal strip of frames, each w x h pixels, of a
// stick figure mid-stride. The legs and arms swing through one full cycle
// across the strip.
func runnerSheet(frames, w, h int) *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, frames*w, h))
	ink := image.NewUniform(runnerColor)

	fw, fh := float32(w), float32(h)
	cx := fw / 2
	headR := max(fh/8, 1)
	neck := 2 * headR
	hip := fh * 0.62
	stride := fw * 0.35
	limb := max(fw/10, 1)

	for i := 0; i < frames; i++ {
		z := vector.NewRasterizer(w, h)
		z.DrawOp = draw.Over

		swing := float32(math.Sin(2 * math.Pi * float64(i) / float64(frames)))

		disc(z, cx, headR, headR)
		stroke(z, cx, neck, cx, hip, limb)
		stroke(z, cx, hip, cx+swing*stride, fh, limb)
		stroke(z, cx, hip, cx-swing*stride, fh, limb)
		shoulder := neck + (hip-neck)/4
		stroke(z, cx, shoulder, cx-swing*stride*0.8, hip, limb)
		stroke(z, cx, shoulder, cx+swing*stride*0.8, hip, limb)

		frame := image.NewRGBA(image.Rect(0, 0, w, h))
		z.Draw(frame, frame.Bounds(), ink, image.Point{})
		draw.Draw(sheet, image.Rect(i*w, 0, (i+1)*w, h), frame, image.Point{}, draw.Src)
	}
	return sheet
}

// hurdleImage draws two posts joined by a top rail.
func hurdleImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Over

	fw, fh := float32(w), float32(h)
	post := max(fw/4, 1)
	rail := max(fh/5, 1)
	rect(z, 0, 0, post, fh)
	rect(z, fw-post, 0, fw, fh)
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})

	z.Reset(w, h)
	z.DrawOp = draw.Over
	rect(z, 0, 0, fw, rail)
	z.Draw(img, img.Bounds(), image.NewUniform(railColor), image.Point{})
	return img
}

// stroke adds a line of the given width from (x0,y0) to (x1,y1).
func stroke(z *vector.Rasterizer, x0, y0, x1, y1, width float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

// disc adds a 16-sided circle.
func disc(z *vector.Rasterizer, cx, cy, r float32) {
	const sides = 16
	z.MoveTo(cx+r, cy)
	for i := 1; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / sides
		z.LineTo(cx+r*float32(math.Cos(a)), cy+r*float32(math.Sin(a)))
	}
	z.ClosePath()
}

func rect(z *vector.Rasterizer, x0, y0, x1, y1 float32) {
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
}
