package gfx

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/scenekit/internal/core"
)

// Content is the visual an actor shows before its own transforms apply.
// An actor owns exactly one content value; interactivity is a separate
// capability and does not depend on the content kind.
type Content interface {
	// Image returns the current unrotated image. Implementations may cache
	// and must return the same image while nothing changed.
	Image() image.Image
}

// Picture is static raster content.
type Picture struct {
	img image.Image
}

// NewPicture wraps an image as content.
func NewPicture(img image.Image) *Picture {
	return &Picture{img: img}
}

// Image returns the wrapped image.
func (p *Picture) Image() image.Image {
	return p.img
}

// TextBox padding around the text when the box is auto-sized.
const textPadding = 2

// TextBox renders a single line of text centered in a filled box.
// A zero width or height sizes the box to the text plus padding.
type TextBox struct {
	text   string
	face   font.Face
	fg, bg color.Color
	width  int
	height int

	cache image.Image
}

// NewTextBox creates a black-on-white text box using the built-in 7x13 face.
func NewTextBox(text string) *TextBox {
	return &TextBox{
		text: text,
		face: basicfont.Face7x13,
		fg:   core.ColorLabelFg,
		bg:   core.ColorLabelBg,
	}
}

// Text returns the displayed text.
func (t *TextBox) Text() string {
	return t.text
}

// SetText changes the displayed text.
func (t *TextBox) SetText(text string) {
	if text == t.text {
		return
	}
	t.text = text
	t.cache = nil
}

// SetFont changes the font face. Nil restores the default face.
func (t *TextBox) SetFont(face font.Face) {
	if face == nil {
		face = basicfont.Face7x13
	}
	t.face = face
	t.cache = nil
}

// SetTextColor changes the text color.
func (t *TextBox) SetTextColor(c color.Color) {
	t.fg = c
	t.cache = nil
}

// SetBackgroundColor changes the box fill color.
func (t *TextBox) SetBackgroundColor(c color.Color) {
	t.bg = c
	t.cache = nil
}

// SetSize fixes the box size. Zero values auto-size to the text.
func (t *TextBox) SetSize(w, h int) {
	t.width, t.height = w, h
	t.cache = nil
}

// Image renders the box, reusing the previous render when nothing changed.
func (t *TextBox) Image() image.Image {
	if t.cache != nil {
		return t.cache
	}

	metrics := t.face.Metrics()
	textW := font.MeasureString(t.face, t.text).Ceil()
	textH := metrics.Height.Ceil()

	w, h := t.width, t.height
	if w <= 0 {
		w = textW + 2*textPadding
	}
	if h <= 0 {
		h = textH + 2*textPadding
	}

	img := Solid(w, h, t.bg)

	// Center the text
	x := (w - textW) / 2
	y := (h-textH)/2 + metrics.Ascent.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(t.fg),
		Face: t.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(t.text)

	t.cache = img
	return img
}
