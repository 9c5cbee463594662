package renderer

import (
	"image"
	"image/color"
	"image/draw"
)

// maxLevel is the largest value carried in the top 24 bits of an audio word
const maxLevel = 0xFFFFFF

// DrawWaveform draws samples into area of img, one vertical stroke per pixel
// column. Each column covers an equal share of the samples and spans from the
// lowest to the highest level in its share. Levels are the 24 significant
// bits of each word (word >> 8), with 0 at the bottom of area.
func DrawWaveform(img draw.Image, area image.Rectangle, samples []uint32, c color.RGBA) {
	area = area.Intersect(img.Bounds())
	if area.Empty() || len(samples) == 0 {
		return
	}

	width := area.Dx()
	n := len(samples)

	for col := 0; col < width; col++ {
		start := col * n / width
		end := (col + 1) * n / width
		if end <= start {
			// Fewer samples than columns: repeat the nearest sample
			end = start + 1
		}

		lo, hi := uint32(maxLevel), uint32(0)
		for _, w := range samples[start:end] {
			level := w >> 8
			lo = min(lo, level)
			hi = max(hi, level)
		}

		x := area.Min.X + col
		for y := levelToY(area, hi); y <= levelToY(area, lo); y++ {
			img.Set(x, y, c)
		}
	}
}

// levelToY maps a 24-bit level to a row inside area
func levelToY(area image.Rectangle, level uint32) int {
	span := uint64(area.Dy() - 1)
	return area.Max.Y - 1 - int(uint64(level)*span/maxLevel)
}
