package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontCache parses the embedded Go Regular font once and hands out faces
// by point size.
type FontCache struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontCache parses the embedded TTF.
func NewFontCache() (*FontCache, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	return &FontCache{font: tt, faces: make(map[float64]font.Face)}, nil
}

// Face returns a face of the given size, creating it on first use.
func (c *FontCache) Face(size float64) (font.Face, error) {
	if face, ok := c.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %.0fpt face: %w", size, err)
	}
	c.faces[size] = face
	return face, nil
}
