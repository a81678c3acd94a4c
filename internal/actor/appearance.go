package actor

import (
	"image"
	"math"

	"github.com/vovakirdan/scenekit/internal/gfx"
)

// imageOps are the transforms applied to the master to get the base image.
type imageOps struct {
	crop    *cropRect
	scaleW  int
	scaleH  int
	scaleBy float64
}

type cropRect struct {
	left, top, width, height int
}

// Crop shows only the region (left, top, width, height) of the master.
// Out-of-range values fall back to the origin or the full image.
func (a *Actor) Crop(left, top, width, height int) {
	a.ops.crop = &cropRect{left, top, width, height}
	a.baseDirty = true
	a.refreshImage()
}

// CropReset removes the crop.
func (a *Actor) CropReset() {
	a.ops.crop = nil
	a.baseDirty = true
	a.refreshImage()
}

// Scale resizes the base image to width x height.
func (a *Actor) Scale(width, height int) {
	a.ops.scaleW, a.ops.scaleH = width, height
	a.ops.scaleBy = 0
	a.baseDirty = true
	a.refreshImage()
}

// ScaleBy resizes the base image by factor relative to the master.
func (a *Actor) ScaleBy(factor float64) {
	a.ops.scaleW, a.ops.scaleH = 0, 0
	a.ops.scaleBy = factor
	a.baseDirty = true
	a.refreshImage()
}

// ImgAngle returns the image rotation in degrees, counterclockwise.
func (a *Actor) ImgAngle() float64 {
	return a.imgAngle
}

// SetImgAngle sets the image rotation. The rotation is always applied to
// the unrotated source, so it never accumulates distortion.
func (a *Actor) SetImgAngle(degrees float64) {
	a.imgAngle = degrees
	a.refreshImage()
}

// RotateImg adds degrees to the image rotation.
func (a *Actor) RotateImg(degrees float64) {
	a.SetImgAngle(a.imgAngle + degrees)
}

// source returns the unrotated image for this tick: the last animation
// frame while one exists, the base image otherwise.
func (a *Actor) source() image.Image {
	if a.frame != nil {
		return a.frame
	}

	master := a.content.Image()
	if a.base != nil && master == a.baseSrc && !a.baseDirty {
		return a.base
	}

	img := master
	if c := a.ops.crop; c != nil {
		img = gfx.Crop(img, c.left, c.top, c.width, c.height)
	}
	switch {
	case a.ops.scaleW > 0 || a.ops.scaleH > 0:
		img = gfx.Scale(img, a.ops.scaleW, a.ops.scaleH)
	case a.ops.scaleBy > 0 && a.ops.scaleBy != 1:
		img = gfx.ScaleBy(img, a.ops.scaleBy)
	}

	a.base, a.baseSrc, a.baseDirty = img, master, false
	return img
}

// refreshImage recomputes the displayed image when the source or the
// rotation changed since the last call.
func (a *Actor) refreshImage() {
	src := a.source()
	if a.display != nil && src == a.rotSrc && a.imgAngle == a.rotAngle {
		return
	}

	a.rotSrc, a.rotAngle = src, a.imgAngle
	if math.Mod(a.imgAngle, 360) == 0 {
		a.display = src
		return
	}
	a.display = gfx.Rotate(src, a.imgAngle)
}
