package calendar

import "github.com/javiermolinar/mescal/internal/grid"

// Renderer materializes a View in some host UI.
type Renderer interface {
	// Mount attaches the renderer to the target named by selector.
	// It returns ErrMissingMountTarget when the target does not exist.
	Mount(selector string) error

	// Draw replaces whatever was drawn before with v.
	Draw(v View) error
}

// Action is a capability the host invokes in response to user input.
// It receives the widget explicitly instead of closing over it.
type Action func(w *Widget) error

// PreviousAction moves the widget back one month.
func PreviousAction(w *Widget) error {
	w.PreviousMonth()
	return nil
}

// NextAction moves the widget forward one month.
func NextAction(w *Widget) error {
	w.NextMonth()
	return nil
}

// SelectAction returns an action selecting day.
func SelectAction(day int) Action {
	return func(w *Widget) error {
		return w.SelectDay(day)
	}
}

// CellView is a grid cell plus the action bound to it.
// Blank and disabled cells have a nil OnClick.
type CellView struct {
	grid.Cell
	OnClick Action
}

// View is everything a renderer needs to draw one month.
type View struct {
	Title          string
	Header         [grid.DaysPerWeek]string
	PreviousSymbol string
	NextSymbol     string
	Previous       Action
	Next           Action
	Rows           [][]CellView
}

// Cell returns the cell at row, col, or false when there is none.
func (v View) Cell(row, col int) (CellView, bool) {
	if row < 0 || row >= len(v.Rows) {
		return CellView{}, false
	}
	if col < 0 || col >= len(v.Rows[row]) {
		return CellView{}, false
	}
	return v.Rows[row][col], true
}

func newView(w *Widget) View {
	weeks := w.Weeks()
	rows := make([][]CellView, len(weeks))
	for i, week := range weeks {
		row := make([]CellView, len(week))
		for j, c := range week {
			row[j] = CellView{Cell: c}
			if !c.IsBlank() && !c.Disabled {
				row[j].OnClick = SelectAction(c.Day)
			}
		}
		rows[i] = row
	}

	return View{
		Title:          w.Title(),
		Header:         grid.HeaderLabels(w.names, w.weekStarts),
		PreviousSymbol: w.opts.PreviousSymbol,
		NextSymbol:     w.opts.NextSymbol,
		Previous:       PreviousAction,
		Next:           NextAction,
		Rows:           rows,
	}
}
