package palette

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-harmony-mcp/internal/harmony"
)

// MaxSwatchSize is the largest accepted tile edge, in pixels, after scaling.
const MaxSwatchSize = 512

// MaxSwatchColors is the largest number of tiles in one swatch.
const MaxSwatchColors = 64

// SwatchResult contains the rendered swatch image.
type SwatchResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
	Colors      []string `json:"colors"` // Hex colors, left to right
}

// RenderSwatch draws colors as a horizontal strip of square tiles, each
// size pixels wide, and returns the strip as a base64-encoded PNG.
//
// A scale other than 1.0 resizes the finished strip with nearest-neighbor
// sampling so tile edges stay sharp.
func RenderSwatch(colors []harmony.RGB, size int, scale float64) (*SwatchResult, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("swatch needs at least one color")
	}
	if len(colors) > MaxSwatchColors {
		return nil, fmt.Errorf("swatch has %d colors, at most %d allowed", len(colors), MaxSwatchColors)
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid swatch size %d: must be positive", size)
	}
	if scale <= 0 {
		scale = 1.0
	}
	if tile := float64(size) * scale; tile > MaxSwatchSize || tile < 1 {
		return nil, fmt.Errorf("swatch tile of %d px at scale %.2f must be between 1 and %d px", size, scale, MaxSwatchSize)
	}

	strip := imaging.New(size*len(colors), size, image.Transparent)
	hexes := make([]string, 0, len(colors))
	for i, c := range colors {
		tile := image.Rect(i*size, 0, (i+1)*size, size)
		draw.Draw(strip, tile, image.NewUniform(c), image.Point{}, draw.Src)
		hexes = append(hexes, c.Hex())
	}

	var out image.Image = strip
	if scale != 1.0 {
		newWidth := int(float64(strip.Bounds().Dx()) * scale)
		newHeight := int(float64(strip.Bounds().Dy()) * scale)
		out = imaging.Resize(strip, newWidth, newHeight, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	encode := imgio.PNGEncoder()
	if err := encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Colors:      hexes,
	}, nil
}
