package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors and styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the status data to a string
func Render(data *Data) string {
	sections := []string{
		renderHeader(data),
		renderConfig(data),
		renderFiles(data),
	}
	if len(data.Variables) > 0 {
		sections = append(sections, renderVariables(data))
	}
	return strings.Join(sections, "\n\n")
}

func renderHeader(data *Data) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📂 Workspace root: ") + valueStyle.Render(data.Root) + "\n")
	b.WriteString(titleStyle.Render("📦 Version: ") + valueStyle.Render(data.Version))
	return b.String()
}

func renderConfig(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("📝 Configuration:") + "\n")

	if data.ConfigPath == "" {
		b.WriteString("   " + keyStyle.Render("File: ") + subtleStyle.Render("none (defaults)") + "\n")
	} else {
		b.WriteString("   " + keyStyle.Render("File: ") + valueStyle.Render(data.ConfigPath) + "\n")
	}
	b.WriteString("   " + keyStyle.Render("Prefix: ") + valueStyle.Render(data.Prefix) + "\n")
	b.WriteString("   " + keyStyle.Render("Syntax: ") + valueStyle.Render(data.Syntax) + "\n")
	b.WriteString("   " + keyStyle.Render("Insert: ") + valueStyle.Render(data.InsertTemplate) + "\n")
	b.WriteString("   " + keyStyle.Render("Languages: ") + valueStyle.Render(strings.Join(data.Languages, ", ")))

	return b.String()
}

func renderFiles(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("🗂  Env files:") + "\n")

	if len(data.Files) == 0 {
		b.WriteString("   " + subtleStyle.Render(fmt.Sprintf("No files starting with %s found", data.Prefix)))
		return b.String()
	}

	for i, f := range data.Files {
		if f.Skipped {
			b.WriteString(fmt.Sprintf("   %d. %s %s %s\n",
				i+1,
				valueStyle.Render(f.Name),
				errorStyle.Render("✗"),
				subtleStyle.Render("("+f.Error+")")))
			continue
		}
		b.WriteString(fmt.Sprintf("   %d. %s %s\n", i+1, valueStyle.Render(f.Name), successStyle.Render("✓")))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func renderVariables(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(fmt.Sprintf("🔑 Variables (%d):", len(data.Variables))) + "\n")

	for _, v := range data.Variables {
		b.WriteString(fmt.Sprintf("   %s → %s\n", keyStyle.Render(v.Key), valueStyle.Render(v.InsertText)))
		for _, d := range v.Definitions {
			b.WriteString("      " + subtleStyle.Render(d) + "\n")
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}
