package ecodes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameTable_Lookup(t *testing.T) {
	name, ok := KEY.Lookup(KEY_ENTER)
	require.True(t, ok)
	require.Equal(t, "KEY_ENTER", name)

	_, ok = KEY.Lookup(0x2c8)
	require.False(t, ok)
}

func TestNameTable_Lookup_FirstAliasWins(t *testing.T) {
	name, ok := KEY.Lookup(BTN_LEFT)
	require.True(t, ok)
	require.Equal(t, "BTN_LEFT", name)
}

func TestNameTable_Aliases(t *testing.T) {
	require.Equal(t, []string{"BTN_LEFT", "BTN_MOUSE"}, KEY.Aliases(BTN_LEFT))
	require.Equal(t, []string{"KEY_MUTE", "KEY_MIN_INTERESTING"}, KEY.Aliases(KEY_MUTE))
	require.Nil(t, KEY.Aliases(0x2c8))
}

func TestNameTable_Aliases_ReturnsCopy(t *testing.T) {
	names := KEY.Aliases(BTN_LEFT)
	names[0] = "mutated"
	require.Equal(t, []string{"BTN_LEFT", "BTN_MOUSE"}, KEY.Aliases(BTN_LEFT))
}

func TestNameTable_Walk_Ascending(t *testing.T) {
	var codes []uint16
	SYN.Walk(func(code uint16, names []string) bool {
		codes = append(codes, code)
		return true
	})
	require.Equal(t, []uint16{SYN_REPORT, SYN_CONFIG, SYN_MT_REPORT, SYN_DROPPED}, codes)
}

func TestNameTable_Walk_Stops(t *testing.T) {
	var codes []uint16
	SYN.Walk(func(code uint16, names []string) bool {
		codes = append(codes, code)
		return len(codes) < 2
	})
	require.Len(t, codes, 2)
}

func TestNameTable_Len(t *testing.T) {
	require.Equal(t, 4, SYN.Len())
	require.Equal(t, 12, REL.Len())
}

func TestNameTable_Has(t *testing.T) {
	require.True(t, REL.Has(REL_WHEEL))
	require.False(t, REL.Has(0x0a))
}

func TestNameTable_WithNames_NewCode(t *testing.T) {
	nt := REL.WithNames(map[uint16][]string{0x0a: {"REL_RESERVED"}})
	name, ok := nt.Lookup(0x0a)
	require.True(t, ok)
	require.Equal(t, "REL_RESERVED", name)

	// the original is untouched
	_, ok = REL.Lookup(0x0a)
	require.False(t, ok)
	require.Equal(t, REL.Len()+1, nt.Len())
}

func TestNameTable_WithNames_ExistingCodeGetsPrecedence(t *testing.T) {
	nt := KEY.WithNames(map[uint16][]string{KEY_ENTER: {"KEY_CR"}})
	name, ok := nt.Lookup(KEY_ENTER)
	require.True(t, ok)
	require.Equal(t, "KEY_CR", name)
	require.Equal(t, []string{"KEY_CR", "KEY_ENTER"}, nt.Aliases(KEY_ENTER))

	name, ok = KEY.Lookup(KEY_ENTER)
	require.True(t, ok)
	require.Equal(t, "KEY_ENTER", name)
}

func TestNameTable_WithNames_Empty(t *testing.T) {
	require.Same(t, KEY, KEY.WithNames(nil))
}

func TestTableFor(t *testing.T) {
	require.Same(t, KEY, TableFor(EV_KEY))
	require.Same(t, REL, TableFor(EV_REL))
	require.Same(t, ABS, TableFor(EV_ABS))
	require.Same(t, SYN, TableFor(EV_SYN))
	require.Nil(t, TableFor(EV_MSC))
}

func TestEVTable(t *testing.T) {
	name, ok := EV.Lookup(EV_KEY)
	require.True(t, ok)
	require.Equal(t, "EV_KEY", name)
}
