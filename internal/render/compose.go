package render

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Label is one text string placed on the certificate. X is the horizontal
// center of the text, Y its top edge.
type Label struct {
	Text string
	X    int
	Y    int
	Size float64
}

// Compositor draws labels onto copies of a template image.
type Compositor struct {
	Fonts    *FontResolver
	FontPath string // explicit font file, may be empty
}

// LoadTemplate decodes the template image at path.
func LoadTemplate(path string) (image.Image, error) {
	return imaging.Open(path)
}

// Overlay draws each label in black onto a copy of template. The template
// itself is never modified.
func (c *Compositor) Overlay(template image.Image, labels []Label) *image.NRGBA {
	canvas := imaging.Clone(template)
	for _, lb := range labels {
		if lb.Text == "" {
			continue
		}
		c.drawLabel(canvas, lb)
	}
	return canvas
}

func (c *Compositor) drawLabel(canvas *image.NRGBA, lb Label) {
	face, _ := c.Fonts.Resolve(c.FontPath, lb.Size)
	defer face.Close()

	x, y := anchor(face, lb)
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(lb.Text)
}

// anchor converts a label's center-x/top-y request into the drawer's
// baseline origin.
func anchor(face font.Face, lb Label) (x, y int) {
	w, _ := measureString(face, lb.Text)
	x = lb.X - w/2
	y = lb.Y + face.Metrics().Ascent.Ceil()
	return x, y
}

// StampQR pastes a QR code into the bottom-right corner of canvas.
func StampQR(canvas *image.NRGBA, qr image.Image, size, margin int) *image.NRGBA {
	q := imaging.Resize(qr, size, size, imaging.Lanczos)
	b := canvas.Bounds()
	return imaging.Paste(canvas, q, image.Pt(b.Dx()-size-margin, b.Dy()-size-margin))
}
