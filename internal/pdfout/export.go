package pdfout

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/youruser/certgen/internal/util"
)

// FileName returns the output document name for text: trimmed, internal
// spaces replaced with underscores, ".pdf" appended.
func FileName(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), " ", "_") + ".pdf"
}

// FitRect places a w×h raster on a pageW×pageH page: scaled uniformly by
// min(pageW/w, pageH/h) and centered on both axes.
func FitRect(w, h, pageW, pageH float64) (x, y, fw, fh float64) {
	ratio := math.Min(pageW/w, pageH/h)
	fw = w * ratio
	fh = h * ratio
	return (pageW - fw) / 2, (pageH - fh) / 2, fw, fh
}

// Export writes img as a single landscape Letter page named after text,
// in outDir (the working directory when empty). A repeated name overwrites
// the earlier document. Returns the written path.
func Export(img image.Image, text, outDir string) (string, error) {
	if outDir != "" {
		if err := util.EnsureDir(outDir); err != nil {
			return "", fmt.Errorf("creating %s: %w", outDir, err)
		}
	}
	doc, err := document(img)
	if err != nil {
		return "", err
	}
	path := filepath.Join(outDir, FileName(text))
	if err := doc.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Render returns the single-page document as bytes instead of writing a file.
func Render(img image.Image) ([]byte, error) {
	doc, err := document(img)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := doc.Output(&out); err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	return out.Bytes(), nil
}

func document(img image.Image) (*fpdf.Fpdf, error) {
	// the composited raster travels to the writer in memory; no temp files
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding raster: %w", err)
	}

	doc := fpdf.New("L", "pt", "Letter", "")
	doc.AddPage()
	pageW, pageH := doc.GetPageSize()

	b := img.Bounds()
	x, y, w, h := FitRect(float64(b.Dx()), float64(b.Dy()), pageW, pageH)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("certificate", opts, &buf)
	doc.ImageOptions("certificate", x, y, w, h, false, opts, 0, "")
	if doc.Err() {
		return nil, fmt.Errorf("composing page: %w", doc.Error())
	}
	return doc, nil
}
