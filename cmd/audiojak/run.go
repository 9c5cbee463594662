package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/linuxmatters/audiojak/internal/audio"
	"github.com/linuxmatters/audiojak/internal/cli"
	"github.com/linuxmatters/audiojak/internal/config"
	"github.com/linuxmatters/audiojak/internal/renderer"
	"github.com/linuxmatters/audiojak/internal/ui"
	"github.com/linuxmatters/audiojak/internal/wave"
)

// options collects everything one render needs
type options struct {
	Input       string
	Output      string
	SampleCount int
	StartOffset int64
	Transcode   bool
	Config      *config.RuntimeConfig
}

// loadCaptionFont is replaced in tests
var loadCaptionFont = renderer.LoadCaptionFont

// result is what a finished render reports to the hold screen
type result struct {
	Samples  *wave.Samples
	Duration time.Duration
	Frame    *renderer.Frame
}

// outputPath returns output, or input with its extension replaced by .png
func outputPath(input, output string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
}

// run renders the waveform then holds until the user quits or ctx is cancelled
func run(ctx context.Context, opts options, noPreview bool) error {
	res, err := render(opts)
	if err != nil {
		return err
	}

	info := ui.HoldInfo{
		Input:    opts.Input,
		Output:   opts.Output,
		Summary:  res.Samples.Params.String(),
		Duration: res.Duration,
		Samples:  res.Samples.Buffer,
	}
	if res.Samples.Warning != nil {
		info.Warning = res.Samples.Warning.Error()
	}

	if noPreview {
		cli.PrintInfo("Holding", "press Ctrl+C to exit")
		<-ctx.Done()
		return nil
	}

	info.Frame = previewImage(res.Frame)
	p := tea.NewProgram(ui.NewHoldModel(ctx, info))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}

// render loads the samples, draws them and writes the PNG
func render(opts options) (*result, error) {
	startTime := time.Now()

	source := opts.Input
	if opts.Transcode || audio.NeedsTranscode(source) {
		tmp, src, err := audio.TranscodeFile(source)
		if err != nil {
			return nil, fmt.Errorf("transcoding %s: %w", source, err)
		}
		defer os.Remove(tmp)
		cli.PrintInfo("Source", src.String())
		cli.PrintInfo("Transcoded", filepath.Base(source)+" to 16-bit mono PCM")
		source = tmp
	}

	samples, err := wave.Load(source, opts.SampleCount, opts.StartOffset)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", opts.Input, err)
	}

	cli.PrintInfo("Format", samples.Params.String())
	if samples.Warning != nil {
		cli.PrintWarning(samples.Warning.Error())
	}

	// Duration is informational only
	var duration time.Duration
	if meta, err := audio.Inspect(source); err == nil {
		duration = meta.Duration
		cli.PrintInfo("Duration", cli.FormatDuration(duration))
	}

	frame, err := newFrame(opts.Config)
	if err != nil {
		return nil, err
	}

	r, g, b := opts.Config.GetWaveColor()
	frame.Draw(samples.Buffer, opts.Config.GetWaveArea(), color.RGBA{R: r, G: g, B: b, A: 255})
	frame.Caption(config.CaptionMargin, caption(filepath.Base(opts.Input), samples, duration)...)

	if err := frame.SavePNG(opts.Output); err != nil {
		return nil, fmt.Errorf("writing %s: %w", opts.Output, err)
	}
	cli.PrintSuccess("Saved " + opts.Output)

	size := "unknown"
	if fi, err := os.Stat(opts.Output); err == nil {
		size = cli.FormatBytes(fi.Size())
	}
	cli.PrintRenderSummary(opts.Output, size, fmt.Sprintf("%d", len(samples.Buffer)), cli.FormatDuration(time.Since(startTime)))

	return &result{Samples: samples, Duration: duration, Frame: frame}, nil
}

// newFrame builds an empty frame with the configured background and font
func newFrame(cfg *config.RuntimeConfig) (*renderer.Frame, error) {
	width, height := cfg.GetFrameSize()

	var bgImage *image.RGBA
	if path := cfg.GetBackgroundImagePath(); path != "" {
		img, err := renderer.LoadBackgroundImage(path, width, height)
		if err != nil {
			return nil, fmt.Errorf("loading background: %w", err)
		}
		bgImage = img
	}

	// Captions are optional; render without them if the font fails to load
	fontFace, err := loadCaptionFont(config.CaptionFontSize)
	if err != nil {
		cli.PrintWarning(fmt.Sprintf("captions disabled: %v", err))
		fontFace = nil
	}

	r, g, b := cfg.GetTextColor()
	return renderer.NewFrame(width, height, bgImage, fontFace, color.RGBA{R: r, G: g, B: b, A: 255}), nil
}

// previewImage scales the frame down to four pixels per preview cell, which
// the hold screen then averages into terminal cells
func previewImage(frame *renderer.Frame) *image.RGBA {
	return frame.Thumbnail(config.PreviewWidth*4, config.PreviewHeight*4)
}

// caption returns the lines drawn in the top left corner of the frame
func caption(name string, s *wave.Samples, duration time.Duration) []string {
	lines := []string{
		name,
		fmt.Sprintf("%d Hz", s.Params.SampleRate),
		fmt.Sprintf("%d ch", s.Params.Channels),
		fmt.Sprintf("%d bit", s.Params.BitsPerSample),
	}
	if duration > 0 {
		lines = append(lines, cli.FormatDuration(duration))
	}
	return append(lines, fmt.Sprintf("%d samples", len(s.Buffer)))
}
