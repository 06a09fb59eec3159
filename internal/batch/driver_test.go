package batch

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/certgen/internal/render"
)

func writeTemplate(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "template.png")
	img := imaging.New(1000, 600, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	require.NoError(t, imaging.Save(img, path))
	return path
}

func writeNames(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testParams(t *testing.T) (Params, string) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	return Params{
		TemplatePath: writeTemplate(t, dir),
		Name:         Placement{X: 500, Y: 300, Size: 36},
		Extras: []render.Label{
			{Text: "Annual Hackathon", X: 500, Y: 200, Size: 24},
			{Text: "First Prize", X: 500, Y: 400, Size: 24},
		},
		OutDir: outDir,
		Fonts:  render.NewFontResolver("testos", nil),
	}, outDir
}

func TestRunProcessesAllNames(t *testing.T) {
	p, outDir := testParams(t)
	p.NamesPath = writeNames(t, t.TempDir(), "jane doe\n\n   \nbob smith\n")

	res, err := Run(p)
	require.NoError(t, err)
	assert.Equal(t, Result{Successful: 2, Failed: 0, Total: 2}, res)

	for _, f := range []string{"Jane_Doe.pdf", "Bob_Smith.pdf"} {
		data, err := os.ReadFile(filepath.Join(outDir, f))
		require.NoError(t, err, f)
		assert.Equal(t, "%PDF", string(data[:4]), f)
	}
}

func TestRunIsolatesItemFailures(t *testing.T) {
	p, outDir := testParams(t)
	// the middle entry renders to a filename with a path separator, which
	// cannot be written; the surrounding entries must still succeed
	p.NamesPath = writeNames(t, t.TempDir(), "jane doe\nbad/entry\ncarol jones\n")

	res, err := Run(p)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 2, res.Successful)
	assert.Equal(t, res.Total, res.Successful+res.Failed)

	_, err = os.Stat(filepath.Join(outDir, "Jane_Doe.pdf"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "Carol_Jones.pdf"))
	assert.NoError(t, err)
}

func TestRunDuplicateNamesOverwrite(t *testing.T) {
	p, outDir := testParams(t)
	p.NamesPath = writeNames(t, t.TempDir(), "jane doe\nJANE DOE\n")

	res, err := Run(p)
	require.NoError(t, err)
	assert.Equal(t, Result{Successful: 2, Failed: 0, Total: 2}, res)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRunAbortsOnMissingNamesFile(t *testing.T) {
	p, _ := testParams(t)
	p.NamesPath = filepath.Join(t.TempDir(), "missing.txt")

	res, err := Run(p)
	assert.Error(t, err)
	assert.Equal(t, Result{}, res)
}

func TestRunMissingTemplateFailsEveryItem(t *testing.T) {
	p, _ := testParams(t)
	p.TemplatePath = filepath.Join(t.TempDir(), "missing.png")
	p.NamesPath = writeNames(t, t.TempDir(), "jane doe\nbob smith\n")

	res, err := Run(p)
	require.NoError(t, err)
	assert.Equal(t, Result{Successful: 0, Failed: 2, Total: 2}, res)
}
