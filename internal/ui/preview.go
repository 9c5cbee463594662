package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/linuxmatters/audiojak/internal/config"
)

// PreviewConfig holds configuration for the terminal preview
type PreviewConfig struct {
	Width  int // Width in terminal cells
	Height int // Height in terminal cells
}

// DefaultPreviewConfig returns a sensible default preview size
// 72x20 is close to 16:9 once terminal cell proportions are accounted for
func DefaultPreviewConfig() PreviewConfig {
	return PreviewConfig{
		Width:  config.PreviewWidth,
		Height: config.PreviewHeight,
	}
}

// DownsampleFrame takes a full-resolution frame and downsamples it to preview size
// Each terminal cell averages the rectangular region of the source it covers
func DownsampleFrame(frame *image.RGBA, cfg PreviewConfig) [][]color.RGBA {
	bounds := frame.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()

	cellWidth := max(srcWidth/cfg.Width, 1)
	cellHeight := max(srcHeight/cfg.Height, 1)

	preview := make([][]color.RGBA, cfg.Height)
	for row := 0; row < cfg.Height; row++ {
		preview[row] = make([]color.RGBA, cfg.Width)
		for col := 0; col < cfg.Width; col++ {
			srcX := bounds.Min.X + col*cellWidth
			srcY := bounds.Min.Y + row*cellHeight

			var sumR, sumG, sumB uint32
			pixelCount := 0

			for y := srcY; y < srcY+cellHeight && y < bounds.Max.Y; y++ {
				for x := srcX; x < srcX+cellWidth && x < bounds.Max.X; x++ {
					c := frame.RGBAAt(x, y)
					sumR += uint32(c.R)
					sumG += uint32(c.G)
					sumB += uint32(c.B)
					pixelCount++
				}
			}

			if pixelCount > 0 {
				preview[row][col] = color.RGBA{
					R: uint8(sumR / uint32(pixelCount)),
					G: uint8(sumG / uint32(pixelCount)),
					B: uint8(sumB / uint32(pixelCount)),
					A: 255,
				}
			}
		}
	}

	return preview
}

// RenderPreview converts a preview grid to a string using ANSI 24-bit
// background colours, one space per cell
func RenderPreview(preview [][]color.RGBA) string {
	if len(preview) == 0 {
		return ""
	}

	var b strings.Builder
	border := strings.Repeat("─", len(preview[0]))

	b.WriteString("  ┌" + border + "┐\n")
	for _, row := range preview {
		b.WriteString("  │")
		for _, pixel := range row {
			fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm \x1b[0m", pixel.R, pixel.G, pixel.B)
		}
		b.WriteString("│\n")
	}
	b.WriteString("  └" + border + "┘\n")

	return b.String()
}
