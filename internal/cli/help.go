package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Custom help styles - scope theme
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ScopePink).
			MarginBottom(1)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ScopeMagenta).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ScopeMagenta).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(ScopePink).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(ScopeViolet).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(PhosphorGray).
				Italic(true)
)

// helpExamples are shown at the end of the help output
var helpExamples = []string{
	"audiojak episode.wav",
	"audiojak episode.mp3 wave.png --color=#00FFAA",
	"audiojak take.wav --samples=48000 --start=9600 --no-preview",
}

// helpRow is one aligned line of the arguments or flags listing
type helpRow struct {
	name       string
	help       string
	defaultVal string
}

// helpGroup is a titled block of flags, in declaration order
type helpGroup struct {
	title string
	rows  []helpRow
}

// StyledHelpPrinter creates a custom help printer with Lipgloss styling.
// Flags are listed under their kong group titles with help text aligned in
// one column.
func StyledHelpPrinter(options kong.HelpOptions) kong.HelpPrinter {
	return kong.HelpPrinter(func(options kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		sb.WriteString(helpTitleStyle.Render(AppName))
		sb.WriteString("\n")
		sb.WriteString(helpDescStyle.Render(AppDescription))
		sb.WriteString("\n")

		args := positionalRows(ctx.Model.Node)
		groups := flagGroups(ctx.Model.Node)

		// Usage is built from the positionals so it tracks the CLI struct
		usage := []string{ctx.Model.Name}
		for _, arg := range args {
			usage = append(usage, arg.name)
		}
		usage = append(usage, "[flags]")

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  " + strings.Join(usage, " ") + "\n")

		width := 0
		for _, arg := range args {
			width = max(width, lipgloss.Width(arg.name))
		}
		for _, g := range groups {
			for _, row := range g.rows {
				width = max(width, lipgloss.Width(row.name))
			}
		}

		if len(args) > 0 {
			sb.WriteString("\n" + helpSectionStyle.Render("Arguments:") + "\n")
			writeRows(&sb, args, helpArgStyle, width)
		}

		for _, g := range groups {
			sb.WriteString("\n" + helpSectionStyle.Render(g.title+":") + "\n")
			writeRows(&sb, g.rows, helpFlagStyle, width)
		}

		sb.WriteString("\n" + helpSectionStyle.Render("Examples:") + "\n")
		for _, ex := range helpExamples {
			sb.WriteString("  " + helpDefaultStyle.Render(ex) + "\n")
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	})
}

// writeRows writes rows with the help text starting at a common column
func writeRows(sb *strings.Builder, rows []helpRow, nameStyle lipgloss.Style, width int) {
	for _, row := range rows {
		pad := strings.Repeat(" ", width-lipgloss.Width(row.name))
		sb.WriteString("  " + nameStyle.Render(row.name) + pad)
		if row.help != "" {
			sb.WriteString("  " + row.help)
		}
		if row.defaultVal != "" {
			sb.WriteString(" " + helpDefaultStyle.Render("(default: "+row.defaultVal+")"))
		}
		sb.WriteString("\n")
	}
}

func positionalRows(node *kong.Node) []helpRow {
	var rows []helpRow
	for _, arg := range node.Positional {
		rows = append(rows, helpRow{name: arg.Summary(), help: arg.Help})
	}
	return rows
}

// flagGroups splits the flags by kong group. Ungrouped flags, and help,
// go under "Flags" at the end.
func flagGroups(node *kong.Node) []helpGroup {
	var groups []helpGroup
	index := map[string]int{}

	add := func(title string, row helpRow) {
		i, ok := index[title]
		if !ok {
			i = len(groups)
			index[title] = i
			groups = append(groups, helpGroup{title: title})
		}
		groups[i].rows = append(groups[i].rows, row)
	}

	var general []helpRow
	for _, f := range node.Flags {
		if f.Hidden || f.Name == "help" {
			continue
		}

		row := helpRow{name: flagName(f), help: f.Help}
		if f.HasDefault && !f.IsBool() && f.Default != "" {
			row.defaultVal = f.Default
		}

		if f.Group != nil && f.Group.Title != "" {
			add(f.Group.Title, row)
		} else {
			general = append(general, row)
		}
	}

	general = append(general, helpRow{name: "-h, --help", help: "Show context-sensitive help."})
	return append(groups, helpGroup{title: "Flags", rows: general})
}

// flagName renders a flag as "-s, --name=PLACEHOLDER"
func flagName(f *kong.Flag) string {
	name := "--" + f.Name
	if f.Short != 0 {
		name = fmt.Sprintf("-%c, %s", f.Short, name)
	}
	if !f.IsBool() {
		placeholder := f.PlaceHolder
		if placeholder == "" {
			placeholder = strings.ReplaceAll(f.Name, "-", "_")
		}
		name += "=" + strings.ToUpper(placeholder)
	}
	return name
}
