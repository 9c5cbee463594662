package renderer

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/golang/freetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// Frame is an output image holding one rendered waveform
type Frame struct {
	img       *image.RGBA
	bgImage   *image.RGBA
	fontFace  font.Face
	textColor color.RGBA
}

// NewFrame creates a width x height frame. bgImage may be nil for a black
// background and fontFace may be nil to disable captions.
func NewFrame(width, height int, bgImage *image.RGBA, fontFace font.Face, textColor color.RGBA) *Frame {
	f := &Frame{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		bgImage:   bgImage,
		fontFace:  fontFace,
		textColor: textColor,
	}
	f.Clear()
	return f
}

// Clear resets the frame to its background
func (f *Frame) Clear() {
	if f.bgImage != nil && f.bgImage.Bounds() == f.img.Bounds() {
		copy(f.img.Pix, f.bgImage.Pix)
		return
	}

	// Opaque black, 8 pixels at a time
	blackPattern := [32]byte{
		0, 0, 0, 255, 0, 0, 0, 255,
		0, 0, 0, 255, 0, 0, 0, 255,
		0, 0, 0, 255, 0, 0, 0, 255,
		0, 0, 0, 255, 0, 0, 0, 255,
	}
	for i := 0; i < len(f.img.Pix); i += 32 {
		copy(f.img.Pix[i:], blackPattern[:])
	}
}

// Draw renders samples as a waveform inside area
func (f *Frame) Draw(samples []uint32, area image.Rectangle, c color.RGBA) {
	DrawWaveform(f.img, area, samples, c)
}

// Caption writes lines of text in the top left corner, one per row.
// It does nothing when the frame has no font.
func (f *Frame) Caption(margin int, lines ...string) {
	if f.fontFace == nil {
		return
	}

	d := &font.Drawer{
		Dst:  f.img,
		Src:  image.NewUniform(f.textColor),
		Face: f.fontFace,
	}

	lineHeight := f.fontFace.Metrics().Height.Ceil()
	y := margin + f.fontFace.Metrics().Ascent.Ceil()
	for _, line := range lines {
		d.Dot = freetype.Pt(margin, y)
		d.DrawString(line)
		y += lineHeight
	}
}

// Image returns the frame's pixels
func (f *Frame) Image() *image.RGBA {
	return f.img
}

// Thumbnail returns a scaled copy of the frame
func (f *Frame) Thumbnail(width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), f.img, f.img.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG writes the frame to outputPath
func (f *Frame) SavePNG(outputPath string) error {
	outFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	if err := png.Encode(outFile, f.img); err != nil {
		outFile.Close()
		return err
	}
	return outFile.Close()
}
