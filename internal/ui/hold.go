package ui

import (
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/linuxmatters/audiojak/internal/cli"
	"github.com/linuxmatters/audiojak/internal/wave"
)

// HoldInfo is what the hold screen displays
type HoldInfo struct {
	Input    string
	Output   string
	Summary  string
	Duration time.Duration
	Samples  wave.SampleBuffer
	Warning  string
	Frame    *image.RGBA // nil disables the preview
}

// contextDoneMsg is sent when the hold context is cancelled
type contextDoneMsg struct{}

// holdModel keeps the rendered waveform on screen until the user quits or
// the context is cancelled
type holdModel struct {
	ctx      context.Context
	info     HoldInfo
	meter    progress.Model
	preview  string
	peak     float64
	width    int
	quitting bool
}

// NewHoldModel creates the hold screen model
func NewHoldModel(ctx context.Context, info HoldInfo) tea.Model {
	meter := progress.New(
		progress.WithGradient(string(cli.ScopeIndigo), string(cli.ScopeMagenta)),
		progress.WithWidth(40),
	)

	m := &holdModel{
		ctx:   ctx,
		info:  info,
		meter: meter,
		peak:  PeakLevel(info.Samples),
	}
	if info.Frame != nil {
		m.preview = RenderPreview(DownsampleFrame(info.Frame, DefaultPreviewConfig()))
	}
	return m
}

// Init waits for the context so an interrupt outside the terminal also quits
func (m *holdModel) Init() tea.Cmd {
	return func() tea.Msg {
		<-m.ctx.Done()
		return contextDoneMsg{}
	}
}

// Update handles messages
func (m *holdModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.meter.Width = max(min(msg.Width-30, 50), 10)
		return m, nil

	case contextDoneMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the UI
func (m *holdModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(cli.TitleStyle.Render(cli.AppName))
	s.WriteString("\n")

	s.WriteString(cli.KeyStyle.Render("Input:    "))
	s.WriteString(cli.ValueStyle.Render(m.info.Input))
	s.WriteString("\n")
	s.WriteString(cli.KeyStyle.Render("Output:   "))
	s.WriteString(cli.ValueStyle.Render(m.info.Output))
	s.WriteString("\n")
	s.WriteString(cli.KeyStyle.Render("Format:   "))
	s.WriteString(cli.ValueStyle.Render(m.info.Summary))
	s.WriteString("\n")
	if m.info.Duration > 0 {
		s.WriteString(cli.KeyStyle.Render("Duration: "))
		s.WriteString(cli.ValueStyle.Render(cli.FormatDuration(m.info.Duration)))
		s.WriteString("\n")
	}
	s.WriteString(cli.KeyStyle.Render("Samples:  "))
	s.WriteString(cli.ValueStyle.Render(fmt.Sprintf("%d", len(m.info.Samples))))
	s.WriteString("\n")

	if m.info.Warning != "" {
		s.WriteString(cli.HighlightStyle.Render("Warning: "))
		s.WriteString(m.info.Warning)
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(cli.KeyStyle.Render("Peak:     "))
	s.WriteString(m.meter.ViewAs(m.peak))
	s.WriteString("\n")

	sparkWidth := 60
	if m.width > 0 {
		sparkWidth = max(min(m.width-4, 100), 10)
	}
	s.WriteString("  ")
	s.WriteString(RenderSparkline(m.info.Samples, sparkWidth))
	s.WriteString("\n\n")

	if m.preview != "" {
		s.WriteString(m.preview)
		s.WriteString("\n")
	}

	s.WriteString(lipgloss.NewStyle().Faint(true).Render("Press q or Ctrl+C to exit"))
	s.WriteString("\n")

	return s.String()
}

// sparkBlocks are the eighth-height block glyphs, lowest first
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline draws the samples as a one-row block chart of width cells.
// Each cell shows the highest level among the samples it covers.
func RenderSparkline(samples wave.SampleBuffer, width int) string {
	if len(samples) == 0 || width <= 0 {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(cli.ScopeMagenta)
	var b strings.Builder
	n := len(samples)

	for col := 0; col < width; col++ {
		start := col * n / width
		end := max((col+1)*n/width, start+1)

		var hi uint32
		for _, w := range samples[start:end] {
			hi = max(hi, w>>8)
		}

		idx := int(uint64(hi) * uint64(len(sparkBlocks)-1) / 0xFFFFFF)
		b.WriteRune(sparkBlocks[idx])
	}

	return style.Render(b.String())
}

// PeakLevel returns the highest 24-bit level in samples as a fraction of full scale
func PeakLevel(samples wave.SampleBuffer) float64 {
	var hi uint32
	for _, w := range samples {
		hi = max(hi, w>>8)
	}
	return float64(hi) / 0xFFFFFF
}
