package config

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Frame settings
const (
	Width  = 1280
	Height = 720
)

// Waveform area, the region handed to the waveform drawer. The left eighth
// of the frame is left free for the caption.
const (
	WaveAreaX      = 160
	WaveAreaY      = 0
	WaveAreaWidth  = 1120
	WaveAreaHeight = 720
)

// Sample extraction defaults
const (
	DefaultSampleCount = -1 // decode every remaining frame
	DefaultStartOffset = 0
)

// Appearance
const (
	// Waveform colour, 0xFF00FF
	WaveColorR = 0xFF
	WaveColorG = 0x00
	WaveColorB = 0xFF

	// Caption colour, brand yellow #F8B31D
	TextColorR = 248
	TextColorG = 179
	TextColorB = 29

	CaptionFontSize = 18.0
	CaptionMargin   = 12
)

// Terminal preview size in cells
const (
	PreviewWidth  = 72
	PreviewHeight = 20
)

// RuntimeConfig holds user overrides. Nil or empty fields fall back to the
// package defaults.
type RuntimeConfig struct {
	WaveColorR *uint8
	WaveColorG *uint8
	WaveColorB *uint8

	TextColorR *uint8
	TextColorG *uint8
	TextColorB *uint8

	Width  int
	Height int

	BackgroundImagePath string
}

// GetWaveColor returns the waveform colour. All three components must be set
// for the override to apply.
func (c *RuntimeConfig) GetWaveColor() (uint8, uint8, uint8) {
	if c.WaveColorR == nil || c.WaveColorG == nil || c.WaveColorB == nil {
		return WaveColorR, WaveColorG, WaveColorB
	}
	return *c.WaveColorR, *c.WaveColorG, *c.WaveColorB
}

// GetTextColor returns the caption colour
func (c *RuntimeConfig) GetTextColor() (uint8, uint8, uint8) {
	if c.TextColorR == nil || c.TextColorG == nil || c.TextColorB == nil {
		return TextColorR, TextColorG, TextColorB
	}
	return *c.TextColorR, *c.TextColorG, *c.TextColorB
}

// GetFrameSize returns the output image size
func (c *RuntimeConfig) GetFrameSize() (int, int) {
	if c.Width <= 0 || c.Height <= 0 {
		return Width, Height
	}
	return c.Width, c.Height
}

// GetWaveArea returns the waveform rectangle for the configured frame size,
// keeping the default proportions
func (c *RuntimeConfig) GetWaveArea() image.Rectangle {
	w, h := c.GetFrameSize()
	if w == Width && h == Height {
		return image.Rect(WaveAreaX, WaveAreaY, WaveAreaX+WaveAreaWidth, WaveAreaY+WaveAreaHeight)
	}
	return image.Rect(w*WaveAreaX/Width, h*WaveAreaY/Height, w, h)
}

// GetBackgroundImagePath returns the background image path, or "" for a
// plain black frame
func (c *RuntimeConfig) GetBackgroundImagePath() string {
	return c.BackgroundImagePath
}

// SetWaveColor parses a hex colour and stores it as the waveform override
func (c *RuntimeConfig) SetWaveColor(hex string) error {
	r, g, b, err := ParseHexColor(hex)
	if err != nil {
		return err
	}
	c.WaveColorR, c.WaveColorG, c.WaveColorB = &r, &g, &b
	return nil
}

// SetTextColor parses a hex colour and stores it as the caption override
func (c *RuntimeConfig) SetTextColor(hex string) error {
	r, g, b, err := ParseHexColor(hex)
	if err != nil {
		return err
	}
	c.TextColorR, c.TextColorG, c.TextColorB = &r, &g, &b
	return nil
}

// ParseHexColor parses "RRGGBB" or "#RRGGBB"
func ParseHexColor(s string) (uint8, uint8, uint8, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: want 6 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
