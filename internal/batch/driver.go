package batch

import (
	"fmt"
	"runtime"

	"github.com/youruser/certgen/internal/names"
	"github.com/youruser/certgen/internal/pdfout"
	"github.com/youruser/certgen/internal/render"
	"github.com/youruser/certgen/internal/roster"
)

// Placement positions one text field on the certificate.
type Placement struct {
	X    int
	Y    int
	Size float64
}

// Params holds everything shared across one batch run.
type Params struct {
	TemplatePath string
	NamesPath    string
	FontPath     string
	Name         Placement      // where the recipient name goes
	Extras       []render.Label // labels constant across the batch (event, rank)
	OutDir       string
	Fonts        *render.FontResolver // nil means the running platform's defaults
}

// Result is the final tally of a batch run.
type Result struct {
	Successful int
	Failed     int
	Total      int
}

// Run processes every name in the list sequentially. A single item's
// failure is counted and reported but never stops the remaining items.
// Only an unreadable names source aborts the whole batch.
func Run(p Params) (Result, error) {
	entries, err := roster.Load(p.NamesPath)
	if err != nil {
		return Result{}, fmt.Errorf("reading names: %w", err)
	}

	fonts := p.Fonts
	if fonts == nil {
		fonts = render.NewFontResolver(runtime.GOOS, render.DefaultFontPaths)
	}
	comp := &render.Compositor{Fonts: fonts, FontPath: p.FontPath}

	res := Result{Total: len(entries)}
	fmt.Printf("Found %d names in %s\n", len(entries), p.NamesPath)

	for i, raw := range entries {
		name := names.Normalize(raw)
		fmt.Printf("Processing %d/%d: '%s' -> '%s'\n", i+1, res.Total, raw, name)

		out, err := renderOne(comp, p, name)
		if err != nil {
			fmt.Printf("  ✗ failed for %s: %v\n", name, err)
			res.Failed++
			continue
		}
		fmt.Printf("  ✓ created %s\n", out)
		res.Successful++
	}

	fmt.Println("\nSummary:")
	fmt.Printf("  Successful: %d/%d\n", res.Successful, res.Total)
	fmt.Printf("  Failed: %d/%d\n", res.Failed, res.Total)
	return res, nil
}

// renderOne is the per-item pipeline. The template is re-read each time so
// one recipient's render never sees another's mutations, and any load error
// stays contained to this item.
func renderOne(comp *render.Compositor, p Params, name string) (string, error) {
	tmpl, err := render.LoadTemplate(p.TemplatePath)
	if err != nil {
		return "", fmt.Errorf("loading template: %w", err)
	}

	labels := make([]render.Label, 0, 1+len(p.Extras))
	labels = append(labels, render.Label{Text: name, X: p.Name.X, Y: p.Name.Y, Size: p.Name.Size})
	labels = append(labels, p.Extras...)

	canvas := comp.Overlay(tmpl, labels)
	return pdfout.Export(canvas, name, p.OutDir)
}
