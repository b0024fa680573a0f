package trace

import (
	"github.com/lixenwraith/pinball/core"
	"github.com/lixenwraith/pinball/engine"
)

// EventRecord is an engine.Event without its tick
type EventRecord struct {
	Kind engine.EventKind `msgpack:"k"`
	Side core.Side        `msgpack:"s"`
}

// Record is the table state after one tick
type Record struct {
	Tick      uint64        `msgpack:"t"`
	Phase     engine.Phase  `msgpack:"p"`
	BallX     float64       `msgpack:"bx"`
	BallY     float64       `msgpack:"by"`
	LeftTipX  float64       `msgpack:"lx"`
	LeftTipY  float64       `msgpack:"ly"`
	RightTipX float64       `msgpack:"rx"`
	RightTipY float64       `msgpack:"ry"`
	Events    []EventRecord `msgpack:"e,omitempty"`
}

func recordFrom(f engine.Frame, events []EventRecord) Record {
	return Record{
		Tick:      f.Tick,
		Phase:     f.Phase,
		BallX:     f.Ball.X,
		BallY:     f.Ball.Y,
		LeftTipX:  f.Flippers[0].Tip.X,
		LeftTipY:  f.Flippers[0].Tip.Y,
		RightTipX: f.Flippers[1].Tip.X,
		RightTipY: f.Flippers[1].Tip.Y,
		Events:    events,
	}
}
