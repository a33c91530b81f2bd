package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Selected day: bold reverse cyan so it reads without color too
	colorSelected = color.New(color.FgCyan, color.Bold, color.ReverseVideo)

	// Disabled days: struck through and dim
	colorDisabled = color.New(color.FgRed, color.Faint, color.CrossedOut)

	// Today: underlined
	colorToday = color.New(color.FgYellow, color.Underline)

	// Weekend columns and secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Navigation symbols
	colorNav = color.New(color.FgCyan)

	// Warnings
	colorWarning = color.New(color.FgYellow, color.Bold)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}
