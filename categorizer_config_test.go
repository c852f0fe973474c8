package evtap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evtap/evtap/config"
	"github.com/evtap/evtap/ecodes"
)

func TestNewCategorizerFromConfig_Empty(t *testing.T) {
	var cfg config.Config
	require.NoError(t, cfg.Init())

	c, err := NewCategorizerFromConfig(&cfg)
	require.NoError(t, err)

	ev := &InputEvent{Type: ecodes.EV_KEY, Code: 28, Value: 1}
	cat, err := c.Categorize(ev)
	require.NoError(t, err)
	require.Equal(t, "KEY_ENTER", cat.(*KeyEvent).Keycode)
}

func TestNewCategorizerFromConfig_AllowUnknownOverride(t *testing.T) {
	var cfg config.Config
	require.NoError(t, cfg.Init())
	cfg.AllowUnknown["key"] = true

	c, err := NewCategorizerFromConfig(&cfg)
	require.NoError(t, err)

	ev := &InputEvent{Type: ecodes.EV_KEY, Code: 0x2c8, Value: 1}
	cat, err := c.Categorize(ev)
	require.NoError(t, err)
	require.Equal(t, "0x2C8", cat.(*KeyEvent).Keycode)
}

func TestNewCategorizerFromConfig_StrictSynOverride(t *testing.T) {
	var cfg config.Config
	require.NoError(t, cfg.Init())
	cfg.AllowUnknown["syn"] = false

	c, err := NewCategorizerFromConfig(&cfg)
	require.NoError(t, err)

	ev := &InputEvent{Type: ecodes.EV_SYN, Code: 17}
	_, err = c.Categorize(ev)
	require.True(t, IsCodeNotFound(err))
}

func TestNewCategorizerFromConfig_ExtraNames(t *testing.T) {
	var cfg config.Config
	require.NoError(t, cfg.Init())
	cfg.Names["key"] = map[uint16][]string{
		0x2c8: {"KEY_VENDOR_MACRO"},
		28:    {"KEY_CR"},
	}

	c, err := NewCategorizerFromConfig(&cfg)
	require.NoError(t, err)

	cat, err := c.Categorize(&InputEvent{Type: ecodes.EV_KEY, Code: 0x2c8, Value: 0})
	require.NoError(t, err)
	require.Equal(t, "KEY_VENDOR_MACRO", cat.(*KeyEvent).Keycode)

	// configured names win for display, builtin ones stay as aliases
	cat, err = c.Categorize(&InputEvent{Type: ecodes.EV_KEY, Code: 28, Value: 0})
	require.NoError(t, err)
	require.Equal(t, "KEY_CR", cat.(*KeyEvent).Keycode)
	require.Equal(t, []string{"KEY_CR", "KEY_ENTER"}, cat.(*KeyEvent).Keycodes)

	// the builtin table is untouched
	name, ok := ecodes.KEY.Lookup(28)
	require.True(t, ok)
	require.Equal(t, "KEY_ENTER", name)
}

func TestNewCategorizerFromConfig_RejectsUnknownCategory(t *testing.T) {
	var cfg config.Config
	require.NoError(t, cfg.Init())
	cfg.AllowUnknown["led"] = true

	_, err := NewCategorizerFromConfig(&cfg)
	require.Error(t, err)
}
