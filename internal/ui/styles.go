// Package ui provides consistent styling for the tabletray CLI
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette - consistent across the application
var (
	ColorPrimary = lipgloss.Color("39")  // Bright blue
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorInfo    = lipgloss.Color("86")  // Cyan

	ColorText   = lipgloss.Color("252") // Light gray
	ColorSubtle = lipgloss.Color("241") // Medium gray
	ColorMuted  = lipgloss.Color("238") // Dark gray
)

var (
	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorMuted).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Status icons
var (
	IconSuccess = "✓"
	IconError   = "✗"
	IconMain    = "★"
)

// FormatAppHeader renders "TITLE  subtitle"
func FormatAppHeader(title, subtitle string) string {
	header := TitleStyle.Render(title)
	if subtitle != "" {
		header += "  " + SubtleStyle.Render(subtitle)
	}
	return header
}

// FormatCheck renders a pass/fail line
func FormatCheck(ok bool, name, detail string) string {
	if ok {
		return SuccessStyle.Render(IconSuccess) + " " + name + " " + SubtleStyle.Render(detail)
	}
	return ErrorStyle.Render(IconError) + " " + name + " " + WarningStyle.Render(detail)
}
