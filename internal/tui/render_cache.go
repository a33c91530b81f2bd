// Package tui provides the terminal user interface for mescal.
package tui

import (
	"github.com/mitchellh/hashstructure/v2"

	"github.com/javiermolinar/mescal/internal/grid"
)

// monthKey is everything that changes the rendered month block.
type monthKey struct {
	Title    string
	Header   [grid.DaysPerWeek]string
	Previous string
	Next     string
	Rows     [][]grid.Cell
	CellW    int
	Today    int // day of month to highlight, 0 when today is elsewhere
	Theme    string
}

// RenderCache keeps the last rendered month block and the hash it was
// rendered for. It lives behind a pointer so value-receiver View calls can
// fill it.
type RenderCache struct {
	key    uint64
	month  string
	valid  bool
	hits   int
	misses int
}

// Month returns the cached block for key, calling render on a miss.
func (c *RenderCache) Month(key monthKey, render func() string) string {
	h, err := hashstructure.Hash(key, hashstructure.FormatV2, nil)
	if err != nil {
		c.valid = false
		return render()
	}
	if c.valid && c.key == h {
		c.hits++
		return c.month
	}
	c.misses++
	c.key = h
	c.month = render()
	c.valid = true
	return c.month
}

// Invalidate drops the cached block.
func (c *RenderCache) Invalidate() {
	c.valid = false
}
