package cli

import "github.com/charmbracelet/lipgloss"

// Scope colour palette 🎧
// Shared colours for consistent branding across CLI and TUI, matched to the
// default waveform colour
var (
	// Core scope colours (bright to dark)
	ScopePink    = lipgloss.Color("#FF77FF") // Light magenta
	ScopeMagenta = lipgloss.Color("#FF00FF") // Default waveform colour
	ScopeViolet  = lipgloss.Color("#9B30FF") // Purple
	ScopeIndigo  = lipgloss.Color("#4B0082") // Deep indigo

	// Accent colours
	PhosphorGray = lipgloss.Color("#8E8EA0") // Subtle text
)
