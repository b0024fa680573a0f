package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/lixenwraith/pinball/engine"
	"github.com/vmihailenco/msgpack/v5"
)

// Recorder streams one msgpack Record per tick
// Register it as both Renderer and EventHandler of the same loop: events collected
// during a tick are attached to the record written by the following Render
type Recorder struct {
	enc     *msgpack.Encoder
	pending []EventRecord
	count   int
	err     error
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: msgpack.NewEncoder(w)}
}

// HandleEvent implements engine.EventHandler
func (r *Recorder) HandleEvent(ev engine.Event) {
	r.pending = append(r.pending, EventRecord{Kind: ev.Kind, Side: ev.Side})
}

// Render implements engine.Renderer; after the first write error it drops records
func (r *Recorder) Render(f engine.Frame) {
	if r.err != nil {
		return
	}
	if err := r.enc.Encode(recordFrom(f, r.pending)); err != nil {
		r.err = fmt.Errorf("trace tick %d: %w", f.Tick, err)
		return
	}
	r.pending = nil
	r.count++
}

// Count returns records written
func (r *Recorder) Count() int {
	return r.count
}

// Err returns the first write error
func (r *Recorder) Err() error {
	return r.err
}

// ReadAll decodes records until EOF
func ReadAll(rd io.Reader) ([]Record, error) {
	dec := msgpack.NewDecoder(rd)
	var records []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return records, fmt.Errorf("trace record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
}
