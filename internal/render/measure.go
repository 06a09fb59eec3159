package render

import (
	"golang.org/x/image/font"
)

// measureString returns the rendered width and height of s in pixels.
// It prefers the bounding-box measurement and falls back to the legacy
// whole-string advance for strings with no ink, so callers see a single
// consistent API regardless of which one produced the numbers.
func measureString(face font.Face, s string) (w, h int) {
	bounds, adv := font.BoundString(face, s)
	w = (bounds.Max.X - bounds.Min.X).Ceil()
	if w <= 0 {
		w = adv.Ceil()
	}
	h = (bounds.Max.Y - bounds.Min.Y).Ceil()
	if h <= 0 {
		m := face.Metrics()
		h = (m.Ascent + m.Descent).Ceil()
	}
	return w, h
}
