package evtap

import (
	"fmt"
	"io"
)

// Categorized is implemented by everything Categorize can return: the
// four typed events, and *InputEvent itself, which is handed back
// unchanged when its type has no registered classifier. Consumers
// that need the concrete category type-switch over these five.
type Categorized interface {
	fmt.Stringer

	// Event returns the underlying raw event.
	Event() *InputEvent
}

// ClassifierFunc constructs a typed event from a raw input event.
// The allowUnknown flag controls what happens when the event code
// cannot be resolved against the category's name table: if false the
// construction fails with a CodeNotFoundError, if true the code's hex
// form is used as the name.
type ClassifierFunc func(ev *InputEvent, allowUnknown bool) (Categorized, error)

type classifier struct {
	construct    ClassifierFunc
	allowUnknown bool
}

// Categorizer maps event types to the classifier responsible for
// that category. The mapping is meant to be populated during setup
// and treated as read-only afterwards; a read-only Categorizer is
// safe for concurrent use.
type Categorizer struct {
	factory map[uint16]classifier
}

// KeyEvent is an event generated by a keyboard, button or other
// key-like device.
type KeyEvent struct {
	// Scancode is the raw event code.
	Scancode uint16

	// Keycode is the resolved name of the scancode. When a scancode
	// has several registered aliases this is the first one; Keycodes
	// holds the full set for tooling that cares.
	Keycode  string
	Keycodes []string

	// Keystate is derived from the event value. A value outside the
	// up/down/hold range leaves it at KeyStateUnknown; that is not an
	// error, it only degrades the display.
	Keystate KeyState

	event *InputEvent
}

// RelEvent is a relative axis event (e.g. moving the mouse 5 units
// to the left).
type RelEvent struct {
	Keycode string

	event *InputEvent
}

// AbsEvent is an absolute axis event (e.g. the coordinates of a tap
// on a touchscreen).
type AbsEvent struct {
	Keycode string

	event *InputEvent
}

// SynEvent is a synchronization event. Synchronization events are
// used as markers to separate other events, in time or in space such
// as with the multitouch protocol.
type SynEvent struct {
	Keycode string

	event *InputEvent
}

// CLIOptions holds the command line options for the evtap CLI.
type CLIOptions struct {
	OptHelp         bool   `short:"h" long:"help" description:"show this help message and exit"`
	OptRcfile       string `long:"rcfile" description:"path to the settings file"`
	OptAllowUnknown bool   `long:"allow-unknown" description:"resolve unknown event codes to their hex value instead of failing"`
	OptList         string `long:"list" description:"list the known codes for a category (key, rel, abs, syn) and exit"`
	OptVersion      bool   `long:"version" description:"print the version and exit"`
}

// CLI reads textual event records from a file or stdin and prints the
// categorized form of each. The streams default to os.Stdin et al and
// are settable for tests.
type CLI struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}
