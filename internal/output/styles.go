package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for identifiable nouns: paths, versions, mod ids.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for dependency section headers.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and the metadata section header.
	ColorYellow = lipgloss.Color("220")

	// ColorMagenta is used for the prompt accent and completion banner.
	ColorMagenta = lipgloss.Color("170")

	// ColorBoldRed is used for errors.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Styles groups the semantic styles used by the CLI.
type Styles struct {
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Noun    lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

var defaultStyles = &Styles{
	Bold:    lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Faint(true),
	Noun:    lipgloss.NewStyle().Foreground(ColorCyan),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed),
	Warning: lipgloss.NewStyle().Foreground(ColorYellow),
	Success: lipgloss.NewStyle().Foreground(ColorGreenCheck),
}

// GetStyles returns the default styles.
func GetStyles() *Styles {
	return defaultStyles
}

// Section identifies a group of prompts.
type Section int

const (
	// SectionProject introduces the name/group/DSL prompts.
	SectionProject Section = iota
	// SectionDependencies introduces the version prompts.
	SectionDependencies
	// SectionMetadata introduces the free-text prompts.
	SectionMetadata
	// SectionReady closes the prompt sequence.
	SectionReady
)

var sectionHeaders = map[Section]struct {
	text  string
	color lipgloss.Color
}{
	SectionProject:      {"🚀 Let's set up your Fabric mod project!", ColorCyan},
	SectionDependencies: {"📦 Now, let's choose your mod's dependencies:", ColorGreen},
	SectionMetadata:     {"📝 Let's add some details about your mod:", ColorYellow},
	SectionReady:        {"✨ Great! Your mod project is ready to be created.", ColorMagenta},
}

// FormatSection renders the header line for a prompt section.
func FormatSection(s Section) string {
	h, ok := sectionHeaders[s]
	if !ok {
		return ""
	}
	return "\n" + lipgloss.NewStyle().Bold(true).Foreground(h.color).Render(h.text)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	return defaultStyles.Success.Render("✔") + " " + msg
}

// FormatNoun renders an identifiable noun (path, version) in cyan.
func FormatNoun(s string) string {
	return defaultStyles.Noun.Render(s)
}
