package engine

import "time"

// InputSource exposes flipper activation, polled once per tick
type InputSource interface {
	Controls() Controls
}

// Renderer consumes one frame per tick
type Renderer interface {
	Render(f Frame)
}

// Loop drives the update pass followed by the render pass
// It never schedules itself: the host run loop calls Tick at the fixed rate
type Loop struct {
	Sim      *Simulation
	Input    InputSource // nil reads as no flipper held
	Renderer Renderer    // nil when the host draws on its own schedule
	Interval time.Duration

	handlers []EventHandler
}

// NewLoop creates a loop for sim at the given fixed interval
func NewLoop(sim *Simulation, input InputSource, renderer Renderer, interval time.Duration) *Loop {
	return &Loop{
		Sim:      sim,
		Input:    input,
		Renderer: renderer,
		Interval: interval,
	}
}

// RegisterHandler adds an event consumer, called in registration order
func (l *Loop) RegisterHandler(h EventHandler) {
	l.handlers = append(l.handlers, h)
}

// Tick polls input, steps the simulation, dispatches events and renders
func (l *Loop) Tick() TickReport {
	var c Controls
	if l.Input != nil {
		c = l.Input.Controls()
	}

	report := l.Sim.Step(c)

	for _, ev := range report.Events {
		for _, h := range l.handlers {
			h.HandleEvent(ev)
		}
	}

	if l.Renderer != nil {
		l.Renderer.Render(l.Sim.Frame())
	}
	return report
}

// RunTicks runs n ticks back to back without pacing and returns the event count per kind
func (l *Loop) RunTicks(n int) map[EventKind]int {
	counts := make(map[EventKind]int)
	for i := 0; i < n; i++ {
		report := l.Tick()
		for _, ev := range report.Events {
			counts[ev.Kind]++
		}
	}
	return counts
}
