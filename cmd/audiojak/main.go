package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/linuxmatters/audiojak/internal/cli"
	"github.com/linuxmatters/audiojak/internal/config"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Input      string `arg:"" name:"input" help:"Input audio file (.wav, .mp3, .flac or .ogg)" optional:""`
	Output     string `arg:"" name:"output" help:"Output PNG file (default: input with .png extension)" optional:""`
	Samples    int    `help:"Number of samples to decode, -1 for all" default:"-1" group:"Decoding"`
	Start      int64  `help:"Byte offset into the sample data to start from" default:"0" group:"Decoding"`
	Color      string `help:"Waveform colour as hex RRGGBB" default:"#FF00FF" placeholder:"hex" group:"Image"`
	TextColor  string `help:"Caption colour as hex RRGGBB" default:"#F8B31D" placeholder:"hex" group:"Image"`
	Width      int    `help:"Output image width in pixels" default:"1280" group:"Image"`
	Height     int    `help:"Output image height in pixels" default:"720" group:"Image"`
	Background string `help:"Background PNG image, scaled to the output size" placeholder:"path" group:"Image"`
	Transcode  bool   `help:"Transcode the input to 16-bit PCM before reading, even if it is a .wav" group:"Decoding"`
	NoPreview  bool   `help:"Disable the terminal preview and wait for Ctrl+C instead"`
	Version    bool   `help:"Show version information"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("audiojak"),
		kong.Description("Read a PCM .wav, check its header and draw the samples as a waveform."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Validate required arguments when not showing version
	if CLI.Input == "" {
		cli.PrintError("<input> is required")
		os.Exit(1)
	}

	// Validate input file exists
	if _, err := os.Stat(CLI.Input); os.IsNotExist(err) {
		cli.PrintError(fmt.Sprintf("input file does not exist: %s", CLI.Input))
		os.Exit(1)
	}

	if CLI.Samples < -1 {
		cli.PrintError(fmt.Sprintf("invalid samples value: %d (must be -1 or more)", CLI.Samples))
		os.Exit(1)
	}
	if CLI.Start < 0 {
		cli.PrintError(fmt.Sprintf("invalid start value: %d (must not be negative)", CLI.Start))
		os.Exit(1)
	}

	runtimeConfig := &config.RuntimeConfig{
		Width:               CLI.Width,
		Height:              CLI.Height,
		BackgroundImagePath: CLI.Background,
	}
	if err := runtimeConfig.SetWaveColor(CLI.Color); err != nil {
		cli.PrintError(fmt.Sprintf("invalid --color: %v", err))
		os.Exit(1)
	}
	if err := runtimeConfig.SetTextColor(CLI.TextColor); err != nil {
		cli.PrintError(fmt.Sprintf("invalid --text-color: %v", err))
		os.Exit(1)
	}

	cli.PrintBanner()

	opts := options{
		Input:       CLI.Input,
		Output:      outputPath(CLI.Input, CLI.Output),
		SampleCount: CLI.Samples,
		StartOffset: CLI.Start,
		Transcode:   CLI.Transcode,
		Config:      runtimeConfig,
	}

	// Interrupt and terminate both end the hold loop
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(sigCtx, opts, CLI.NoPreview)
	stop()
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
