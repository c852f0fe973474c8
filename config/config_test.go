package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, basename, txt string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), basename)
	require.NoError(t, os.WriteFile(file, []byte(txt), 0o644))
	return file
}

func TestReadFilename_YAML(t *testing.T) {
	file := writeConfig(t, "config.yaml", `
AllowUnknown:
  key: true
  syn: false
Names:
  key:
    712: [KEY_VENDOR_MACRO]
  rel:
    10: [REL_RESERVED]
`)

	var c Config
	require.NoError(t, c.Init())
	require.NoError(t, c.ReadFilename(file))

	require.Equal(t, map[string]bool{"key": true, "syn": false}, c.AllowUnknown)
	require.Equal(t, []string{"KEY_VENDOR_MACRO"}, c.Names["key"][712])
	require.Equal(t, []string{"REL_RESERVED"}, c.Names["rel"][10])
}

func TestReadFilename_JSON(t *testing.T) {
	file := writeConfig(t, "config.json", `{
	"AllowUnknown": {"abs": true},
	"Names": {"abs": {"63": ["ABS_RESERVED"]}}
}`)

	var c Config
	require.NoError(t, c.Init())
	require.NoError(t, c.ReadFilename(file))

	require.True(t, c.AllowUnknown["abs"])
	require.Equal(t, []string{"ABS_RESERVED"}, c.Names["abs"][63])
}

func TestReadFilename_MissingFile(t *testing.T) {
	var c Config
	require.NoError(t, c.Init())
	require.Error(t, c.ReadFilename(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestReadFilename_UnknownCategory(t *testing.T) {
	file := writeConfig(t, "config.yaml", "AllowUnknown:\n  led: true\n")

	var c Config
	require.NoError(t, c.Init())
	err := c.ReadFilename(file)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown category "led"`)
}

func TestValidate_UnknownNamesCategory(t *testing.T) {
	var c Config
	require.NoError(t, c.Init())
	c.Names["wheel"] = map[uint16][]string{1: {"X"}}
	require.Error(t, c.Validate())
}

func TestLocateRcfile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", "")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "evtap"), 0o755))
	want := filepath.Join(dir, "evtap", "config.yaml")
	require.NoError(t, os.WriteFile(want, []byte("{}\n"), 0o644))

	got, err := LocateRcfile(DefaultConfigLocator)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLocateRcfile_NotFound(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", "")
	t.Setenv("HOME", t.TempDir())

	_, err := LocateRcfile(DefaultConfigLocator)
	require.Error(t, err)
}
