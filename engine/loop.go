package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-rain/constants"
	"github.com/lixenwraith/glyph-rain/rain"
	"github.com/lixenwraith/glyph-rain/render"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// Loop drives the simulate-render-present cycle: input handling, per-frame
// resize detection, pause state, and frame pacing.
type Loop struct {
	screen   tcell.Screen
	cfg      Config
	field    *rain.Field
	sim      *rain.Simulator
	renderer *render.Renderer
	paused   bool
}

// NewLoop wires a field, simulator and renderer to an initialized screen.
func NewLoop(screen tcell.Screen, cfg Config, rng *vmath.FastRand) *Loop {
	width, height := screen.Size()
	return &Loop{
		screen:   screen,
		cfg:      cfg,
		field:    rain.NewField(width, height, cfg.Density, cfg.Speed, rng),
		sim:      rain.NewSimulator(rng, cfg.Density, cfg.Speed),
		renderer: render.NewRenderer(screen, width, height, rng, !cfg.NoFade, cfg.Bold),
	}
}

// Run blocks until a quit key. The screen stays owned by the caller; the
// event poller goroutine exits when the screen is finalized.
func (l *Loop) Run() {
	events := make(chan tcell.Event, constants.EventChanSize)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(l.cfg.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !l.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			l.tick()
		}
	}
}

// handleEvent processes one input event, returning false on quit. Input keeps
// working while paused.
func (l *Loop) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P'):
			l.paused = !l.paused
		}
	case *tcell.EventResize:
		// Geometry is re-read from Size once per frame; the event only forces
		// the next present to repaint every cell
		l.screen.Sync()
	}
	return true
}

// tick runs one frame: resize check first, then simulate and draw unless
// paused. Column state never changes while paused.
func (l *Loop) tick() {
	width, height := l.screen.Size()
	if l.field.Reflow(width, height) {
		l.renderer.Resize(width, height)
		// Previous screen contents are stale relative to the new dimensions
		l.screen.Clear()
	}

	if l.paused {
		return
	}
	l.sim.Advance(l.field)
	l.renderer.Draw(l.field)
}
