package render

import (
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultFontPaths maps an operating-system family to its stock font file.
var DefaultFontPaths = map[string]string{
	"windows": `C:\Windows\Fonts\arial.ttf`,
	"darwin":  "/Library/Fonts/Arial.ttf",
	"linux":   "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// FontResolver picks a font face for rendering. The platform table is
// injected so the compositor itself never consults runtime.GOOS.
type FontResolver struct {
	goos  string
	paths map[string]string
}

func NewFontResolver(goos string, paths map[string]string) *FontResolver {
	return &FontResolver{goos: goos, paths: paths}
}

// Resolve returns a face at the requested size, trying the explicit path
// first, then the platform default, then the built-in fixed-size face.
// degraded reports that the built-in face was used, in which case the
// requested size is not honored. Font problems never produce an error.
func (r *FontResolver) Resolve(fontPath string, size float64) (face font.Face, degraded bool) {
	if fontPath != "" {
		if face, err := loadFace(fontPath, size); err == nil {
			log.Printf("using font %s at size %g", fontPath, size)
			return face, false
		} else {
			log.Printf("font %s unavailable: %v", fontPath, err)
		}
	}
	if def, ok := r.paths[r.goos]; ok {
		if face, err := loadFace(def, size); err == nil {
			log.Printf("using system font %s at size %g", def, size)
			return face, false
		}
	}
	log.Println("falling back to built-in font; size may not scale properly")
	return basicfont.Face7x13, true
}

func loadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
