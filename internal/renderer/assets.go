package renderer

import (
	"image"
	"image/png"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadBackgroundImage loads a PNG and scales it to width x height
func LoadBackgroundImage(filename string, width, height int) (*image.RGBA, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	return scaleTo(img, width, height), nil
}

// scaleTo returns img as RGBA at the requested size
func scaleTo(img image.Image, width, height int) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))

	if bounds.Dx() != width || bounds.Dy() != height {
		// ApproxBiLinear is the fastest bilinear implementation
		draw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), img, bounds, draw.Src, nil)
	} else {
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return rgba
}

// LoadCaptionFont returns the Go Regular face at size points
func LoadCaptionFont(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	return face, nil
}
