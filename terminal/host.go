package terminal

import (
	"fmt"
	"sync"

	"github.com/automoto/tilejump/sim"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Host runs a simulation inside a terminal. Events arrive on a channel fed
// by a PollEvent goroutine and are applied on the stepping goroutine, so
// the simulation is never touched concurrently.
type Host struct {
	sim      *sim.Simulation
	screen   tcell.Screen
	keys     *Keys
	renderer *Renderer
	events   chan tcell.Event
	done     chan struct{}
	closed   sync.Once
	log      logrus.FieldLogger

	// OnQuit is called once when the user asks to exit.
	OnQuit func()
	quit   bool

	// ShowStatus writes actor state on the top row.
	ShowStatus bool
}

func NewHost(s *sim.Simulation, screen tcell.Screen, renderer *Renderer, keys *Keys, log logrus.FieldLogger) *Host {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Host{
		sim:      s,
		screen:   screen,
		keys:     keys,
		renderer: renderer,
		events:   make(chan tcell.Event, 100),
		done:     make(chan struct{}),
		log:      log,
	}
}

// Events is where the poller delivers terminal events.
func (h *Host) Events() chan<- tcell.Event {
	return h.events
}

// Poll forwards screen events to the host until the screen is finalized or
// the host is closed.
func (h *Host) Poll() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-h.done:
			return
		}
	}
}

// Close releases a Poll blocked on a full event queue. Safe to call more
// than once.
func (h *Host) Close() {
	h.closed.Do(func() { close(h.done) })
}

// RunOnce drains pending events, expires quiet keys and steps the
// simulation once.
func (h *Host) RunOnce() {
	h.drain()
	h.keys.Tick(h.sim)
	h.sim.RunOnce()
}

// Draw renders the current frame.
func (h *Host) Draw() {
	if h.ShowStatus {
		a := h.sim.Actor()
		h.renderer.Status = fmt.Sprintf("x %.0f y %.0f vy %.1f grounded %v", a.X, a.Y, a.SpeedY, a.Grounded)
	} else {
		h.renderer.Status = ""
	}
	if err := h.sim.Emit(h.renderer); err != nil {
		h.log.WithError(err).Warn("Render failed")
	}
}

func (h *Host) drain() {
	for {
		select {
		case ev := <-h.events:
			h.handle(ev)
		default:
			return
		}
	}
}

func (h *Host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			h.requestQuit()
			return
		}
		h.keys.Handle(ev, h.sim)
	case *tcell.EventResize:
		h.resize()
	}
}

// resize keeps the camera centred on the visible cells.
func (h *Host) resize() {
	w, ht := h.renderer.ViewportFor(h.screen.Size())
	if err := h.sim.SetViewport(w, ht); err != nil {
		h.log.WithError(err).Warn("Ignoring resize")
	} else {
		h.log.WithFields(logrus.Fields{"width": w, "height": ht}).Debug("Viewport resized")
	}
	h.screen.Sync()
}

func (h *Host) requestQuit() {
	if h.quit {
		return
	}
	h.quit = true
	h.Close()
	h.log.Info("Quit requested")
	if h.OnQuit != nil {
		h.OnQuit()
	}
}
