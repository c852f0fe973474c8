package evtap

import (
	"fmt"

	"github.com/evtap/evtap/ecodes"
)

// resolveCode is the single name-table lookup every classifier is
// built around. A miss is fatal unless the caller opted into the hex
// fallback.
func resolveCode(tbl *ecodes.NameTable, category string, code uint16, allowUnknown bool) (string, error) {
	if name, ok := tbl.Lookup(code); ok {
		return name, nil
	}
	if allowUnknown {
		return fmt.Sprintf("0x%02X", code), nil
	}
	return "", &CodeNotFoundError{Category: category, Code: code}
}

// NewKeyEvent classifies ev as a key event, resolving its code
// against the key table.
func NewKeyEvent(ev *InputEvent, allowUnknown bool) (*KeyEvent, error) {
	return newKeyEvent(ecodes.KEY, ev, allowUnknown)
}

func newKeyEvent(tbl *ecodes.NameTable, ev *InputEvent, allowUnknown bool) (*KeyEvent, error) {
	ke := &KeyEvent{
		Scancode: ev.Code,
		Keystate: KeyStateUnknown,
		event:    ev,
	}

	switch ev.Value {
	case 0:
		ke.Keystate = KeyUp
	case 1:
		ke.Keystate = KeyDown
	case 2:
		ke.Keystate = KeyHold
	}

	name, err := resolveCode(tbl, "key", ev.Code, allowUnknown)
	if err != nil {
		return nil, err
	}
	ke.Keycode = name

	if names := tbl.Aliases(ev.Code); len(names) > 0 {
		ke.Keycodes = names
	} else {
		ke.Keycodes = []string{name}
	}
	return ke, nil
}

// Event returns the wrapped raw event.
func (ke *KeyEvent) Event() *InputEvent {
	return ke.event
}

func (ke *KeyEvent) String() string {
	return fmt.Sprintf("key event at %.6f, %d (%s), %s",
		ke.event.Timestamp(), ke.Scancode, ke.Keycode, ke.Keystate)
}

func (ke *KeyEvent) GoString() string {
	return fmt.Sprintf("KeyEvent(%#v)", ke.event)
}

// NewRelEvent classifies ev as a relative axis event.
func NewRelEvent(ev *InputEvent, allowUnknown bool) (*RelEvent, error) {
	return newRelEvent(ecodes.REL, ev, allowUnknown)
}

func newRelEvent(tbl *ecodes.NameTable, ev *InputEvent, allowUnknown bool) (*RelEvent, error) {
	name, err := resolveCode(tbl, "rel", ev.Code, allowUnknown)
	if err != nil {
		return nil, err
	}
	return &RelEvent{Keycode: name, event: ev}, nil
}

// Event returns the wrapped raw event.
func (re *RelEvent) Event() *InputEvent {
	return re.event
}

// The trailing space is part of the historical format; tools parse it
// as-is.
func (re *RelEvent) String() string {
	return fmt.Sprintf("relative axis event at %.6f, %s %d ",
		re.event.Timestamp(), re.Keycode, re.event.Value)
}

func (re *RelEvent) GoString() string {
	return fmt.Sprintf("RelEvent(%#v)", re.event)
}

// NewAbsEvent classifies ev as an absolute axis event.
func NewAbsEvent(ev *InputEvent, allowUnknown bool) (*AbsEvent, error) {
	return newAbsEvent(ecodes.ABS, ev, allowUnknown)
}

func newAbsEvent(tbl *ecodes.NameTable, ev *InputEvent, allowUnknown bool) (*AbsEvent, error) {
	name, err := resolveCode(tbl, "abs", ev.Code, allowUnknown)
	if err != nil {
		return nil, err
	}
	return &AbsEvent{Keycode: name, event: ev}, nil
}

// Event returns the wrapped raw event.
func (ae *AbsEvent) Event() *InputEvent {
	return ae.event
}

func (ae *AbsEvent) String() string {
	return fmt.Sprintf("absolute axis event at %.6f, %s %d ",
		ae.event.Timestamp(), ae.Keycode, ae.event.Value)
}

func (ae *AbsEvent) GoString() string {
	return fmt.Sprintf("AbsEvent(%#v)", ae.event)
}

// NewSynEvent classifies ev as a synchronization event. Note that the
// default allowUnknown for the syn category is true: the kernel emits
// a number of barrier sub-types that are not worth enumerating.
func NewSynEvent(ev *InputEvent, allowUnknown bool) (*SynEvent, error) {
	return newSynEvent(ecodes.SYN, ev, allowUnknown)
}

func newSynEvent(tbl *ecodes.NameTable, ev *InputEvent, allowUnknown bool) (*SynEvent, error) {
	name, err := resolveCode(tbl, "syn", ev.Code, allowUnknown)
	if err != nil {
		return nil, err
	}
	return &SynEvent{Keycode: name, event: ev}, nil
}

// Event returns the wrapped raw event.
func (se *SynEvent) Event() *InputEvent {
	return se.event
}

func (se *SynEvent) String() string {
	return fmt.Sprintf("synchronization event at %.6f, %s ",
		se.event.Timestamp(), se.Keycode)
}

func (se *SynEvent) GoString() string {
	return fmt.Sprintf("SynEvent(%#v)", se.event)
}
