package main

import (
	"fmt"
	"log"
	"math/rand"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

const helpLine = "click: start/goal  space: clear  r: new map  s: edit  tab: engine  d: diagonal  q: quit"

var styles = [...]tcell.Style{
	markOpen:     tcell.StyleDefault.Foreground(tcell.ColorGray),
	markObstacle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true),
	markClosed:   tcell.StyleDefault.Foreground(tcell.ColorBlue),
	markPath:     tcell.StyleDefault.Foreground(tcell.ColorYellow),
	markStart:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
	markGoal:     tcell.StyleDefault.Foreground(tcell.ColorRed),
}

// Visualizer is the interactive front end. All state transitions live on
// methods that never touch the screen; draw is the only place that does.
type Visualizer struct {
	cfg      Config
	recorder search.Recorder
	rng      *rand.Rand

	grid     *grid.Grid
	kind     gridpath.Engine
	movement search.Movement
	manager  search.Manager

	start   *grid.Point
	goal    *grid.Point
	editing bool
	result  search.Result
	closed  mapset.Set[grid.Point]
	status  string

	buttons tcell.ButtonMask
}

// NewVisualizer builds the initial random map from cfg. rec may be nil.
func NewVisualizer(cfg Config, rec search.Recorder) (*Visualizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kind, _ := cfg.EngineKind()

	v := &Visualizer{
		cfg:      cfg,
		recorder: rec,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		kind:     kind,
		closed:   mapset.New[grid.Point](),
	}
	if cfg.Diagonal {
		v.movement = search.CanDiagonal
	}

	g, err := grid.Random(cfg.Width, cfg.Height, cfg.Obstacles, v.rng)
	if err != nil {
		return nil, err
	}
	v.grid = g
	if err := v.rebuild(); err != nil {
		return nil, err
	}
	v.status = helpLine

	return v, nil
}

// rebuild replaces the manager after an engine or movement change.
func (v *Visualizer) rebuild() error {
	opts := []search.Option{search.WithMovement(v.movement), search.WithSeed(v.cfg.Seed)}
	if v.recorder != nil {
		opts = append(opts, search.WithRecorder(v.recorder))
	}
	m, err := gridpath.New(v.kind, opts...)
	if err != nil {
		return err
	}
	if err := m.Attach(v.grid); err != nil {
		return err
	}
	v.manager = m

	return nil
}

// Click handles a primary-button press on map cell (x,y).
//
// Outside edit mode the first click places the start, the second the goal and
// triggers a search; a third click starts over with a new start.
// In edit mode the click toggles the cell and refreshes a pending search.
func (v *Visualizer) Click(x, y int) {
	if !v.grid.IsInMap(x, y) {
		return
	}
	p := grid.Point{X: x, Y: y}

	if v.editing {
		if _, err := v.grid.Toggle(x, y); err != nil {
			v.status = err.Error()
			return
		}
		v.resetResult()
		v.refresh()
		return
	}

	if !v.grid.IsWalkable(x, y) {
		v.status = fmt.Sprintf("%s is an obstacle", p)
		return
	}
	if v.start == nil || v.goal != nil {
		v.start, v.goal = &p, nil
		v.resetResult()
		v.status = fmt.Sprintf("start %s, pick a goal", p)
		return
	}
	v.goal = &p
	v.Search()
}

// Search runs the active engine between the placed endpoints.
func (v *Visualizer) Search() {
	if v.start == nil || v.goal == nil {
		return
	}
	res, err := v.manager.FindPath(v.start.X, v.start.Y, v.goal.X, v.goal.Y)
	v.result = res
	v.closed = v.manager.ClosedList()
	v.status = summary(v.manager.Name(), v.movement, res, err)
	log.Printf("search %s -> %s: %s", v.start, v.goal, v.status)
}

// refresh re-runs the search when both endpoints are placed.
func (v *Visualizer) refresh() {
	if v.start != nil && v.goal != nil {
		v.Search()
	}
}

func (v *Visualizer) resetResult() {
	v.result = search.Result{}
	v.closed = mapset.New[grid.Point]()
}

// Clear drops both endpoints and the last result; the map stays.
func (v *Visualizer) Clear() {
	v.start, v.goal = nil, nil
	v.resetResult()
	v.status = helpLine
}

// Regenerate draws a new random map from the visualizer's RNG.
func (v *Visualizer) Regenerate() error {
	g, err := grid.Random(v.cfg.Width, v.cfg.Height, v.cfg.Obstacles, v.rng)
	if err != nil {
		return err
	}
	if err := v.manager.Attach(g); err != nil {
		return err
	}
	v.grid = g
	v.Clear()
	log.Printf("regenerated %d×%d map with %d obstacles", g.Width(), g.Height(), g.ObstacleCount())

	return nil
}

// ToggleEdit flips edit mode. Entering it wipes the obstacles and endpoints.
func (v *Visualizer) ToggleEdit() {
	v.editing = !v.editing
	if v.editing {
		v.grid.ClearObstacles()
		v.Clear()
		v.status = "edit: click cells to toggle obstacles, s to finish"
		return
	}
	v.status = helpLine
}

// CycleEngine switches to the next engine and repeats a pending search.
func (v *Visualizer) CycleEngine() error {
	v.kind = v.kind.Next()
	if err := v.rebuild(); err != nil {
		return err
	}
	v.resetResult()
	v.status = "engine " + v.kind.String()
	v.refresh()

	return nil
}

// ToggleDiagonal flips the movement mode and repeats a pending search.
func (v *Visualizer) ToggleDiagonal() error {
	if v.movement == search.CanDiagonal {
		v.movement = search.OnlyStraight
	} else {
		v.movement = search.CanDiagonal
	}
	if err := v.rebuild(); err != nil {
		return err
	}
	v.resetResult()
	v.status = "movement " + v.movement.String()
	v.refresh()

	return nil
}

// frame snapshots the drawable state.
func (v *Visualizer) frame() frame {
	return frame{view: v.grid, closed: v.closed, path: v.result.Path, start: v.start, goal: v.goal}
}

// handleInput applies ev and reports whether the loop should keep running.
func (v *Visualizer) handleInput(ev tcell.Event) bool {
	var err error
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			err = v.CycleEngine()
		case tcell.KeyRune:
			switch unicode.ToLower(ev.Rune()) {
			case 'q':
				return false
			case ' ':
				v.Clear()
			case 'r':
				err = v.Regenerate()
			case 's':
				v.ToggleEdit()
			case 'd':
				err = v.ToggleDiagonal()
			}
		}

	case *tcell.EventMouse:
		// act on the press edge only; drags and releases are ignored
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && v.buttons&tcell.Button1 == 0
		v.buttons = buttons
		if pressed {
			x, y := ev.Position()
			v.Click(x, y)
		}
	}
	if err != nil {
		v.status = err.Error()
		log.Printf("input: %v", err)
	}

	return true
}

// draw paints the map one cell per column with the status line below it.
func (v *Visualizer) draw(screen tcell.Screen) {
	screen.Clear()

	f := v.frame()
	w := f.view.Width()
	for i, m := range f.marks() {
		screen.SetContent(i%w, i/w, rune(glyphs[m]), nil, styles[m])
	}

	mode := "search"
	if v.editing {
		mode = "edit"
	}
	line := fmt.Sprintf("[%s %s %s] %s", v.kind, v.movement, mode, v.status)
	col := 0
	for _, r := range line {
		screen.SetContent(col, f.view.Height(), r, nil, tcell.StyleDefault)
		col++
	}

	screen.Show()
}

// run owns the screen until the user quits.
func (v *Visualizer) run(screen tcell.Screen) {
	screen.EnableMouse()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	v.draw(screen)
	for ev := range eventChan {
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}
		if !v.handleInput(ev) {
			return
		}
		v.draw(screen)
	}
}
