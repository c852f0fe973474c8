package evtap

// KeyState is the press state a key event derives from its value.
type KeyState int32

// Key states, matching the values the kernel reports in
// input_event.value for EV_KEY events.
const (
	KeyUp   KeyState = 0
	KeyDown KeyState = 1
	KeyHold KeyState = 2

	// KeyStateUnknown marks a value outside the up/down/hold range.
	// Classification still succeeds in that case; only the displayed
	// state degrades to "unknown".
	KeyStateUnknown KeyState = -1
)
