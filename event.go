// Package evtap classifies linux input events. An InputEvent mirrors
// the input_event struct from linux/input.h; Categorize converts it
// into one of the typed events (KeyEvent, RelEvent, AbsEvent,
// SynEvent) according to its type, resolving the event code against
// the name tables in the ecodes package.
package evtap

import "fmt"

// InputEvent is a generic input event. It closely resembles the
// input_event struct defined in linux/input.h:
//
//	struct input_event {
//	    struct timeval time;
//	    __u16 type;
//	    __u16 code;
//	    __s32 value;
//	};
//
// The device layer that decodes the fixed-width kernel record is not
// part of this package; InputEvent is the handoff point. Treat values
// as immutable once constructed.
type InputEvent struct {
	// Sec is the time in seconds since epoch at which the event occurred.
	Sec uint64

	// Usec is the microsecond portion of the timestamp. Producers are
	// expected to keep it in [0, 1000000); this package does not check.
	Usec uint64

	// Type is the event type, one of the ecodes.EV_* constants.
	Type uint16

	// Code is the event code related to the event type.
	Code uint16

	// Value is the event value related to the event type.
	Value int32
}

// Timestamp returns the event timestamp as a float.
func (e *InputEvent) Timestamp() float64 {
	return float64(e.Sec) + float64(e.Usec)/1000000.0
}

// Event returns the event itself. It is here so that *InputEvent
// satisfies Categorized, which lets Categorize hand back events whose
// type has no registered classifier untouched.
func (e *InputEvent) Event() *InputEvent {
	return e
}

func (e *InputEvent) String() string {
	return fmt.Sprintf("event at %.6f, code %02d, type %02d, val %02d",
		e.Timestamp(), e.Code, e.Type, e.Value)
}

// GoString returns a reconstruction form exposing all five fields
// positionally, in construction order.
func (e *InputEvent) GoString() string {
	return fmt.Sprintf("InputEvent(%d, %d, %d, %d, %d)",
		e.Sec, e.Usec, e.Type, e.Code, e.Value)
}
