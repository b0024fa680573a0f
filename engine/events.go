package engine

import "github.com/lixenwraith/pinball/core"

// EventKind identifies a simulation event
type EventKind uint8

const (
	EventWallBounce EventKind = iota
	EventCeilingBounce
	EventFlipperHit // Side is set
	EventRespawn
)

func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall"
	case EventCeilingBounce:
		return "ceiling"
	case EventFlipperHit:
		return "flipper"
	case EventRespawn:
		return "respawn"
	default:
		return "unknown"
	}
}

// Event is raised by Simulation.Step
type Event struct {
	Kind EventKind
	Side core.Side
	Tick uint64
}

// TickReport collects events raised during one Step
type TickReport struct {
	Tick   uint64
	Events []Event
}

func (r *TickReport) add(kind EventKind, side core.Side) {
	r.Events = append(r.Events, Event{Kind: kind, Side: side, Tick: r.Tick})
}

// Has reports whether an event of kind was raised
func (r TickReport) Has(kind EventKind) bool {
	for _, ev := range r.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

// EventHandler consumes simulation events after each tick
type EventHandler interface {
	HandleEvent(ev Event)
}
