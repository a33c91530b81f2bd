package tui

import "github.com/javiermolinar/mescal/internal/calendar"

// mountTarget is the only element the TUI offers to the widget.
const mountTarget = "#calendar"

// screen is the widget's Renderer inside the TUI. Draw only records the
// view; the bubbletea View method paints it on the next frame.
type screen struct {
	target string
	view   calendar.View
	draws  int
}

func newScreen() *screen {
	return &screen{target: mountTarget}
}

func (s *screen) Mount(selector string) error {
	if selector != s.target {
		return calendar.ErrMissingMountTarget
	}
	return nil
}

func (s *screen) Draw(v calendar.View) error {
	s.view = v
	s.draws++
	return nil
}
