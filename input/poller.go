package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pulopulo/constants"
)

// Poller reads terminal events without blocking the frame loop
// A single goroutine pumps screen events into a buffered channel; it only
// forwards events and never touches game state
type Poller struct {
	events  chan tcell.Event
	resized bool
	closed  bool
}

// NewPoller starts pumping events from an initialised screen
// The pump exits when the screen is finalised
func NewPoller(screen tcell.Screen) *Poller {
	p := &Poller{
		events: make(chan tcell.Event, constants.EventChannelSize),
	}
	go p.pump(screen)
	return p
}

func (p *Poller) pump(screen tcell.Screen) {
	defer close(p.events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		p.events <- ev
	}
}

// PollKey waits up to timeout for the next event and returns it if it is a key
// Non-key events are consumed; a resize is remembered for Resized
func (p *Poller) PollKey(timeout time.Duration) (*tcell.EventKey, bool) {
	if p.closed {
		return nil, false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-p.events:
		if !ok {
			p.closed = true
			return nil, false
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return ev, true
		case *tcell.EventResize:
			p.resized = true
		}
		return nil, false
	case <-timer.C:
		return nil, false
	}
}

// Resized reports and clears a pending resize
func (p *Poller) Resized() bool {
	r := p.resized
	p.resized = false
	return r
}

// Closed reports whether the event source has shut down
func (p *Poller) Closed() bool {
	return p.closed
}
