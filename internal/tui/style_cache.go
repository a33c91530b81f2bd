// Package tui provides the terminal user interface for mescal.
package tui

import "github.com/charmbracelet/lipgloss"

// cellKind classifies a grid cell for styling. Selected and disabled win
// over today, which wins over weekend shading.
type cellKind int

const (
	cellDay cellKind = iota
	cellWeekend
	cellToday
	cellSelected
	cellDisabled
	cellBlank
	cellKindCount
)

// StyleCache stores width-specific styles to avoid per-cell mutations.
type StyleCache struct {
	Cells         [cellKindCount]lipgloss.Style
	Header        lipgloss.Style
	HeaderWeekend lipgloss.Style
}

// NewStyleCache precomputes all width-dependent styles for the grid.
func NewStyleCache(styles *Styles, width int) StyleCache {
	var c StyleCache
	for k := range cellKindCount {
		c.Cells[k] = styles.CellStyleWidth(k, width)
	}
	c.Header = styles.HeaderStyleWidth(width, false)
	c.HeaderWeekend = styles.HeaderStyleWidth(width, true)
	return c
}
