package evtap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evtap/evtap/ecodes"
)

func TestCategorize_Key(t *testing.T) {
	ev := &InputEvent{Sec: 1337197425, Usec: 477835, Type: ecodes.EV_KEY, Code: 28, Value: 0}
	cat, err := Categorize(ev)
	require.NoError(t, err)

	ke, ok := cat.(*KeyEvent)
	require.True(t, ok, "expected *KeyEvent, got %T", cat)
	require.Equal(t, "KEY_ENTER", ke.Keycode)
	require.Equal(t, KeyUp, ke.Keystate)
	require.Equal(t, "key event at 1337197425.477835, 28 (KEY_ENTER), up", ke.String())
}

func TestCategorize_Rel(t *testing.T) {
	ev := &InputEvent{Type: ecodes.EV_REL, Code: ecodes.REL_WHEEL, Value: -1}
	cat, err := Categorize(ev)
	require.NoError(t, err)
	require.IsType(t, &RelEvent{}, cat)
}

func TestCategorize_Abs(t *testing.T) {
	ev := &InputEvent{Type: ecodes.EV_ABS, Code: ecodes.ABS_MT_POSITION_X, Value: 300}
	cat, err := Categorize(ev)
	require.NoError(t, err)
	require.IsType(t, &AbsEvent{}, cat)
}

func TestCategorize_SynDefaultsToHexFallback(t *testing.T) {
	// sync markers carry sub-types outside the table; the category
	// default must absorb them rather than error
	ev := &InputEvent{Type: ecodes.EV_SYN, Code: 17}
	cat, err := Categorize(ev)
	require.NoError(t, err)

	se, ok := cat.(*SynEvent)
	require.True(t, ok, "expected *SynEvent, got %T", cat)
	require.Equal(t, "0x11", se.Keycode)
}

func TestCategorize_UnregisteredType_PassesThrough(t *testing.T) {
	ev := &InputEvent{Type: ecodes.EV_MSC, Code: 4, Value: 458792}
	cat, err := Categorize(ev)
	require.NoError(t, err)
	require.Same(t, ev, cat)
}

func TestCategorize_UnknownKeyCode_SurfacesError(t *testing.T) {
	ev := &InputEvent{Type: ecodes.EV_KEY, Code: 0x2c8, Value: 1}
	cat, err := Categorize(ev)
	require.Error(t, err)
	require.True(t, IsCodeNotFound(err))
	require.Nil(t, cat)
}

func TestCategorize_Idempotent(t *testing.T) {
	ev := &InputEvent{Sec: 7, Usec: 13, Type: ecodes.EV_KEY, Code: 28, Value: 2}

	first, err := Categorize(ev)
	require.NoError(t, err)
	second, err := Categorize(first.Event())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCategorizer_Register(t *testing.T) {
	c := NewCategorizer()
	c.Register(ecodes.EV_MSC, func(ev *InputEvent, allowUnknown bool) (Categorized, error) {
		se, err := newSynEvent(ecodes.SYN, ev, allowUnknown)
		if err != nil {
			return nil, err
		}
		return se, nil
	}, true)

	ev := &InputEvent{Type: ecodes.EV_MSC, Code: 0}
	cat, err := c.Categorize(ev)
	require.NoError(t, err)
	require.IsType(t, &SynEvent{}, cat)
}
