package tui

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/mescal/internal/calendar"
	"github.com/javiermolinar/mescal/internal/config"
	"github.com/javiermolinar/mescal/internal/db"
	"github.com/javiermolinar/mescal/internal/grid"
	"github.com/javiermolinar/mescal/internal/logging"
	"github.com/javiermolinar/mescal/internal/store"
	"github.com/javiermolinar/mescal/internal/tui/commands"
)

var jan17 = time.Date(2024, time.January, 17, 0, 0, 0, 0, time.Local)

type testEnv struct {
	repo   *db.SQLite
	copied string
}

func newTestModel(t *testing.T) (Model, *testEnv) {
	t.Helper()
	return newTestModelWithConfig(t, config.Default())
}

func newTestModelWithConfig(t *testing.T, cfg *config.Config) (Model, *testEnv) {
	t.Helper()

	repo, err := db.New(filepath.Join(t.TempDir(), "mescal.db"))
	if err != nil {
		t.Fatalf("db.New() error = %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	env := &testEnv{repo: repo}
	m, err := New(context.Background(), repo, cfg,
		WithStart(jan17),
		WithClock(func() time.Time { return jan17 }),
		WithClipboard(func(s string) error {
			env.copied = s
			return nil
		}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return update(t, *m, tea.WindowSizeMsg{Width: 80, Height: 30}), env
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", updated)
	}
	return model
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func submit(t *testing.T, m Model, command string) Model {
	t.Helper()
	m = update(t, m, key("/"))
	m.prompt.SetValue(command)
	return update(t, m, key("enter"))
}

func click(t *testing.T, m Model, x, y int) Model {
	t.Helper()
	return update(t, m, tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
}

// cellCenter returns the terminal coordinate of a grid cell.
func cellCenter(l LayoutCache, row, col int) (int, int) {
	x := l.OriginX + 1 + col*(l.CellW+1) + l.CellW/2
	y := l.OriginY + 4 + row
	return x, y
}

func assertDate(t *testing.T, m Model, year int, month time.Month, day int) {
	t.Helper()
	got := m.widget().Date()
	if got.Year() != year || got.Month() != month || got.Day() != day {
		t.Fatalf("date = %s, want %d-%02d-%02d", got.Format("2006-01-02"), year, month, day)
	}
}

func TestNew_OpensOnStartDate(t *testing.T) {
	m, env := newTestModel(t)

	assertDate(t, m, 2024, time.January, 17)
	if m.screen.draws == 0 {
		t.Fatal("widget never drew into the screen")
	}
	if m.screen.view.Title != "Jan - 2024" {
		t.Fatalf("title = %q", m.screen.view.Title)
	}

	st, err := env.repo.LoadState(context.Background())
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if st == nil || st.Year != 2024 || st.Month != 0 || st.Day != 17 {
		t.Fatalf("state = %+v, want 2024-0-17", st)
	}
}

func TestNew_UnknownMountTarget(t *testing.T) {
	cfg := config.Default()
	cfg.Calendar.Selector = "#sidebar"

	repo, err := db.New(filepath.Join(t.TempDir(), "mescal.db"))
	if err != nil {
		t.Fatalf("db.New() error = %v", err)
	}
	defer func() { _ = repo.Close() }()

	_, err = New(context.Background(), repo, cfg, WithStart(jan17))
	if !errors.Is(err, calendar.ErrMissingMountTarget) {
		t.Fatalf("New() error = %v, want ErrMissingMountTarget", err)
	}
}

func TestNew_ResumesSavedState(t *testing.T) {
	repo, err := db.New(filepath.Join(t.TempDir(), "mescal.db"))
	if err != nil {
		t.Fatalf("db.New() error = %v", err)
	}
	defer func() { _ = repo.Close() }()

	ctx := context.Background()
	if err := repo.SaveState(ctx, storeState(2023, 10, 9)); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	m, err := New(ctx, repo, config.Default(), WithClock(func() time.Time { return jan17 }))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	assertDate(t, *m, 2023, time.November, 9)
}

func TestNormalKeys_Navigate(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, key("n"))
	assertDate(t, m, 2024, time.February, 1)
	if m.statusMsg != "Selected Thu 2024-02-01" {
		t.Fatalf("status = %q", m.statusMsg)
	}

	m = update(t, m, key("left"))
	assertDate(t, m, 2024, time.January, 1)

	m = update(t, m, key("<"))
	assertDate(t, m, 2023, time.December, 1)

	m = update(t, m, key(">"))
	m = update(t, m, key("right"))
	assertDate(t, m, 2024, time.February, 1)
}

func TestNormalKeys_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestPrompt_SelectByTyping(t *testing.T) {
	m, env := newTestModel(t)

	m = update(t, m, key("g"))
	if m.mode != ModePrompt {
		t.Fatalf("mode = %s, want prompt", m.mode)
	}
	if got := m.prompt.Value(); got != "/select " {
		t.Fatalf("prompt = %q", got)
	}

	m = typeText(t, m, "3")
	m = update(t, m, key("enter"))

	if m.mode != ModeNormal {
		t.Fatalf("mode = %s, want normal", m.mode)
	}
	assertDate(t, m, 2024, time.January, 3)

	st, err := env.repo.LoadState(context.Background())
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if st.Day != 3 {
		t.Fatalf("stored day = %d, want 3", st.Day)
	}
}

func TestPrompt_SelectOutOfRange(t *testing.T) {
	m, _ := newTestModel(t)

	m = submit(t, m, "/select 40")

	assertDate(t, m, 2024, time.January, 17)
	if !m.statusErr {
		t.Fatalf("expected error status, got %q", m.statusMsg)
	}

	m = submit(t, m, "/select abc")
	if !strings.Contains(m.statusMsg, `not a day: "abc"`) {
		t.Fatalf("status = %q", m.statusMsg)
	}
}

func TestPrompt_DisablePersistsAcceptedDays(t *testing.T) {
	m, env := newTestModel(t)

	m = submit(t, m, "/disable 6,7,40")

	if !m.statusErr {
		t.Fatalf("expected error status, got %q", m.statusMsg)
	}
	if want := "Error: not in Jan - 2024: 40"; m.statusMsg != want {
		t.Fatalf("status = %q, want %q", m.statusMsg, want)
	}
	if got := m.widget().Disabled(); !slices.Equal(got, []int{6, 7}) {
		t.Fatalf("disabled = %v, want [6 7]", got)
	}

	stored, err := env.repo.ListDisabledDays(context.Background(), 2024, 0)
	if err != nil {
		t.Fatalf("ListDisabledDays() error = %v", err)
	}
	if !slices.Equal(stored, []int{6, 7}) {
		t.Fatalf("stored = %v, want [6 7]", stored)
	}
}

func TestPrompt_DisableThenEnable(t *testing.T) {
	m, env := newTestModel(t)

	m = submit(t, m, "/d 20-22")
	if m.statusMsg != "Disabled 20, 21, 22" {
		t.Fatalf("status = %q", m.statusMsg)
	}

	m = submit(t, m, "/enable 21")
	if m.statusMsg != "Enabled 21" {
		t.Fatalf("status = %q", m.statusMsg)
	}
	if got := m.widget().Disabled(); !slices.Equal(got, []int{20, 22}) {
		t.Fatalf("disabled = %v, want [20 22]", got)
	}

	stored, err := env.repo.ListDisabledDays(context.Background(), 2024, 0)
	if err != nil {
		t.Fatalf("ListDisabledDays() error = %v", err)
	}
	if !slices.Equal(stored, []int{20, 22}) {
		t.Fatalf("stored = %v, want [20 22]", stored)
	}
}

func TestPrompt_DisabledDaysComeBackAfterNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	m = submit(t, m, "/disable 5")
	m = update(t, m, key("n"))
	if got := m.widget().Disabled(); len(got) != 0 {
		t.Fatalf("february disabled = %v, want none", got)
	}

	m = update(t, m, key("p"))
	if got := m.widget().Disabled(); !slices.Equal(got, []int{5}) {
		t.Fatalf("january disabled = %v, want [5]", got)
	}
}

func TestPrompt_SelectDisabledDay(t *testing.T) {
	m, _ := newTestModel(t)

	m = submit(t, m, "/disable 9")
	m = submit(t, m, "/s 9")

	assertDate(t, m, 2024, time.January, 17)
	if !strings.Contains(m.statusMsg, calendar.ErrDayDisabled.Error()) {
		t.Fatalf("status = %q", m.statusMsg)
	}
}

func TestPrompt_TabCompletes(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, key("/"))
	m = typeText(t, m, "di")
	m = update(t, m, key("tab"))

	if got := m.prompt.Value(); got != "/disable " {
		t.Fatalf("prompt = %q, want %q", got, "/disable ")
	}
}

func TestPrompt_EscapeCancels(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, key("g"))
	m = typeText(t, m, "4")
	m = update(t, m, key("esc"))

	if m.mode != ModeNormal {
		t.Fatalf("mode = %s, want normal", m.mode)
	}
	if m.prompt.Value() != "" {
		t.Fatalf("prompt = %q, want empty", m.prompt.Value())
	}
	assertDate(t, m, 2024, time.January, 17)
}

func TestPrompt_UnknownCommand(t *testing.T) {
	m, _ := newTestModel(t)

	m = submit(t, m, "/frobnicate")

	if m.statusMsg != "Error: unknown command: /frobnicate" {
		t.Fatalf("status = %q", m.statusMsg)
	}
}

func TestPrompt_Log(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, key("n"))

	m = update(t, m, key("/"))
	m.prompt.SetValue("/log")
	updated, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	msg := cmd()
	nm, ok := msg.(commands.NotificationsMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want NotificationsMsg", msg)
	}
	if len(nm.Notifications) == 0 || len(nm.Notifications) > historyLimit {
		t.Fatalf("got %d notifications", len(nm.Notifications))
	}

	m = update(t, updated.(Model), nm)
	if !strings.HasPrefix(m.statusMsg, "Recent: day_changed 2024-02-01") {
		t.Fatalf("status = %q", m.statusMsg)
	}
}

func TestCopySelected(t *testing.T) {
	m, env := newTestModel(t)

	_, cmd := m.Update(key("y"))
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	msg := cmd()
	if env.copied != "2024-01-17" {
		t.Fatalf("copied = %q", env.copied)
	}

	m = update(t, m, msg)
	if m.statusMsg != "Copied 2024-01-17" {
		t.Fatalf("status = %q", m.statusMsg)
	}
}

func TestCopySelected_Failure(t *testing.T) {
	m, _ := newTestModel(t)
	m.writeClip = func(string) error { return errors.New("no display") }

	_, cmd := m.Update(key("y"))
	m = update(t, m, cmd())

	if !m.statusErr || !strings.Contains(m.statusMsg, "no display") {
		t.Fatalf("status = %q", m.statusMsg)
	}
}

func TestClearStatus(t *testing.T) {
	m, _ := newTestModel(t)
	m.statusMsg = "hello"
	m.statusErr = true
	m.statusTime = time.Now().Add(-time.Second)

	m = update(t, m, commands.ClearStatusMsg{})

	if m.statusMsg != "" || m.statusErr {
		t.Fatalf("status not cleared: %q", m.statusMsg)
	}
}

func TestMouse_ClickDay(t *testing.T) {
	m, _ := newTestModel(t)

	// January 2024 starts on a Monday, so day 5 is row 0, column 4.
	x, y := cellCenter(m.layoutCache, 0, 4)
	m = click(t, m, x, y)

	assertDate(t, m, 2024, time.January, 5)
}

func TestMouse_ClickIsLogged(t *testing.T) {
	m, _ := newTestModel(t)
	var buf bytes.Buffer
	m.logger = logging.New(&buf).Logger

	x, y := cellCenter(m.layoutCache, 0, 4)
	m = click(t, m, x, y)

	out := buf.String()
	for _, want := range []string{`"msg":"mouse press"`, `"event":"left press"`, `"target":"cell"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log missing %s:\n%s", want, out)
		}
	}
	assertDate(t, m, 2024, time.January, 5)
}

func TestMouse_ClickNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	l := m.layoutCache

	m = click(t, m, l.OriginX, l.OriginY)
	assertDate(t, m, 2023, time.December, 1)

	m = click(t, m, l.OriginX+l.MonthW-1, l.OriginY)
	assertDate(t, m, 2024, time.January, 1)
}

func TestMouse_ClickDisabledDay(t *testing.T) {
	m, _ := newTestModel(t)
	m = submit(t, m, "/disable 6")

	x, y := cellCenter(m.layoutCache, 0, 5)
	m = click(t, m, x, y)

	assertDate(t, m, 2024, time.January, 17)
	if m.statusMsg != "Day 6 is disabled" {
		t.Fatalf("status = %q", m.statusMsg)
	}
}

func TestMouse_ClickBlankOrBorder(t *testing.T) {
	m, _ := newTestModel(t)
	l := m.layoutCache

	// Column separator between the first two cells.
	m = click(t, m, l.OriginX+1+l.CellW, l.OriginY+4)
	// Below the last week of January.
	x, y := cellCenter(l, 6, 0)
	m = click(t, m, x, y)

	assertDate(t, m, 2024, time.January, 17)
}

func TestMouse_IgnoredInPromptMode(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, key("g"))

	x, y := cellCenter(m.layoutCache, 0, 0)
	m = click(t, m, x, y)

	assertDate(t, m, 2024, time.January, 17)
}

func TestMouse_IgnoresRightButton(t *testing.T) {
	m, _ := newTestModel(t)

	x, y := cellCenter(m.layoutCache, 0, 0)
	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	assertDate(t, m, 2024, time.January, 17)
}

func TestView_CellsLineUpWithHitTest(t *testing.T) {
	m, _ := newTestModel(t)
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	l := m.layoutCache

	for _, tc := range []struct {
		row, col int
		label    string
	}{
		{0, 0, "1"},
		{2, 2, "17"},
		{4, 2, "31"},
	} {
		x, y := cellCenter(l, tc.row, tc.col)
		if y >= len(lines) {
			t.Fatalf("row %d beyond view height", tc.row)
		}
		left := l.OriginX + 1 + tc.col*(l.CellW+1)
		cell := ansi.Cut(lines[y], left, left+l.CellW)
		if strings.TrimSpace(cell) != tc.label {
			t.Fatalf("cell at (%d,%d) = %q, want %q", x, y, cell, tc.label)
		}
		if h := l.hitTest(x, y); h.kind != hitCell || h.row != tc.row || h.col != tc.col {
			t.Fatalf("hitTest(%d,%d) = %+v", x, y, h)
		}
	}

	nav := lines[l.OriginY]
	if !strings.Contains(nav, "Jan - 2024") {
		t.Fatalf("nav line = %q", nav)
	}
}

func TestView_Footer(t *testing.T) {
	m, _ := newTestModel(t)
	m = submit(t, m, "/disable 6")
	m.statusMsg = ""

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Wednesday, January 17, 2024") {
		t.Fatalf("missing selection summary:\n%s", out)
	}
	if !strings.Contains(out, "disabled: 6") {
		t.Fatalf("missing disabled days:\n%s", out)
	}
	if !strings.Contains(out, "n/> next") {
		t.Fatalf("missing help:\n%s", out)
	}
}

func TestView_PromptShowsSuggestions(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, key("/"))

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "/select DAY") {
		t.Fatalf("missing suggestions:\n%s", out)
	}
	if !strings.Contains(out, "esc cancel") {
		t.Fatalf("missing prompt help:\n%s", out)
	}
}

func TestView_LoadingAndTooSmall(t *testing.T) {
	m, _ := newTestModel(t)

	m.width, m.height = 0, 0
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q", got)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 3, Height: 1})
	if got := m.View(); !strings.Contains(got, "Terminal too small") {
		t.Fatalf("View() = %q", got)
	}
}

func TestRenderCache_ReusesMonth(t *testing.T) {
	m, _ := newTestModel(t)

	_ = m.View()
	_ = m.View()
	if m.renderCache.hits != 1 || m.renderCache.misses != 1 {
		t.Fatalf("hits=%d misses=%d, want 1/1", m.renderCache.hits, m.renderCache.misses)
	}

	m = update(t, m, key("n"))
	_ = m.View()
	if m.renderCache.misses != 2 {
		t.Fatalf("misses = %d, want 2 after navigation", m.renderCache.misses)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	_ = m.View()
	if m.renderCache.misses != 3 {
		t.Fatalf("misses = %d, want 3 after resize", m.renderCache.misses)
	}
}

func TestLayout_CellWidthFollowsTerminal(t *testing.T) {
	m, _ := newTestModel(t)

	tests := []struct {
		width int
		want  int
	}{
		{0, defaultCellWidth},
		{30, minCellWidth},
		{80, 9},
		{200, maxCellWidth},
	}
	for _, tt := range tests {
		if got := m.buildLayoutCache(tt.width, 30).CellW; got != tt.want {
			t.Errorf("width %d: CellW = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestHitTest(t *testing.T) {
	l := LayoutCache{CellW: 5, MonthW: 43, OriginX: 2, OriginY: 1, PrevW: 3, NextW: 3}

	tests := []struct {
		name string
		x, y int
		want hit
	}{
		{"previous", 3, 1, hit{kind: hitPrevious}},
		{"next", 44, 1, hit{kind: hitNext}},
		{"title", 20, 1, hit{}},
		{"left border", 2, 5, hit{}},
		{"first cell", 3, 5, hit{kind: hitCell}},
		{"separator", 8, 5, hit{}},
		{"second row third col", 15, 6, hit{kind: hitCell, row: 1, col: 2}},
		{"weekday header", 5, 3, hit{}},
		{"right of grid", 60, 5, hit{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.hitTest(tt.x, tt.y); got != tt.want {
				t.Fatalf("hitTest(%d,%d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestScreen_Mount(t *testing.T) {
	s := newScreen()

	if err := s.Mount(mountTarget); err != nil {
		t.Fatalf("Mount(%q) error = %v", mountTarget, err)
	}
	if err := s.Mount("#nope"); !errors.Is(err, calendar.ErrMissingMountTarget) {
		t.Fatalf("Mount(#nope) error = %v", err)
	}
}

func TestClassifyCell(t *testing.T) {
	tests := []struct {
		name    string
		day     int
		sel     bool
		dis     bool
		weekend bool
		want    cellKind
	}{
		{"blank", 0, false, false, true, cellBlank},
		{"disabled wins", 17, true, true, true, cellDisabled},
		{"selected over today", 17, true, false, false, cellSelected},
		{"today over weekend", 17, false, false, true, cellToday},
		{"weekend", 20, false, false, true, cellWeekend},
		{"plain", 18, false, false, false, cellDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := gridCell(tt.day, tt.sel, tt.dis)
			if got := classifyCell(c, tt.weekend, 17); got != tt.want {
				t.Fatalf("classifyCell() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	// Monday start: columns 5 and 6 are Saturday and Sunday.
	for col := range 7 {
		want := col == 5 || col == 6
		if got := isWeekend(1, col); got != want {
			t.Errorf("isWeekend(1, %d) = %v", col, got)
		}
	}
	// Sunday start: columns 0 and 6.
	if !isWeekend(0, 0) || !isWeekend(0, 6) || isWeekend(0, 3) {
		t.Error("sunday start weekend columns wrong")
	}
}

func storeState(year, month, day int) store.State {
	return store.State{Year: year, Month: month, Day: day}
}

func gridCell(day int, selected, disabled bool) grid.Cell {
	return grid.Cell{Day: day, Selected: selected, Disabled: disabled}
}
