// Package config reads evtap's optional settings file. The file
// carries site-local classification policy: per category, whether
// unresolved event codes fall back to their hex form, and extra code
// names layered over the builtin ecodes tables.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/evtap/evtap/internal/util"
)

var homedirFunc = util.Homedir

// Categories lists the category names addressable from a config file,
// in dispatch-table order.
var Categories = []string{"key", "rel", "abs", "syn"}

// Config holds all the data that can be configured in the external
// configuration file.
type Config struct {
	// AllowUnknown overrides the fallback policy per category. Absent
	// categories keep their builtin default (hex fallback for syn,
	// strict for the rest).
	AllowUnknown map[string]bool `json:"AllowUnknown" yaml:"AllowUnknown"`

	// Names adds code names per category. For a code the builtin
	// tables already know, the configured names take precedence for
	// display and the builtin ones remain as aliases.
	Names map[string]map[uint16][]string `json:"Names" yaml:"Names"`
}

// Init initializes the config to its zero policy: no overrides, no
// extra names.
func (c *Config) Init() error {
	c.AllowUnknown = make(map[string]bool)
	c.Names = make(map[string]map[uint16][]string)
	return nil
}

// ReadFilename reads the config from the given file, and does the
// appropriate processing, if any
func (c *Config) ReadFilename(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to open file %s", filename)
	}
	defer f.Close()

	switch ext := filepath.Ext(filename); ext {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(c); err != nil {
			return errors.Wrap(err, "failed to decode YAML")
		}
	default:
		if err := json.NewDecoder(f).Decode(c); err != nil {
			return errors.Wrap(err, "failed to decode JSON")
		}
	}

	return c.Validate()
}

// Validate checks that every category the config addresses is one of
// the known ones.
func (c *Config) Validate() error {
	for cat := range c.AllowUnknown {
		if !validCategory(cat) {
			return errors.Errorf("unknown category %q in AllowUnknown", cat)
		}
	}
	for cat := range c.Names {
		if !validCategory(cat) {
			return errors.Errorf("unknown category %q in Names", cat)
		}
	}
	return nil
}

func validCategory(name string) bool {
	for _, cat := range Categories {
		if cat == name {
			return true
		}
	}
	return false
}

// Locator locates a config file in a given directory.
type Locator interface {
	Locate(string) (string, error)
}

// LocatorFunc is a function that implements Locator.
type LocatorFunc func(string) (string, error)

// Locate calls the underlying function.
func (f LocatorFunc) Locate(dir string) (string, error) {
	return f(dir)
}

var configFilenames = []string{"config.json", "config.yaml", "config.yml"}

// DefaultConfigLocator searches for a config file with one of the
// known filenames (config.json, config.yaml, config.yml) in the given
// directory.
var DefaultConfigLocator = LocatorFunc(func(dir string) (string, error) {
	for _, basename := range configFilenames {
		file := filepath.Join(dir, basename)
		if _, err := os.Stat(file); err == nil {
			return file, nil
		}
	}
	return "", errors.Errorf("config file not found in %s", dir)
})

// LocateRcfile attempts to find the config file in various locations
func LocateRcfile(locater Locator) (string, error) {
	// http://standards.freedesktop.org/basedir-spec/basedir-spec-latest.html
	//
	// Try in this order:
	//	  $XDG_CONFIG_HOME/evtap/config.{json,yaml,yml}
	//    $XDG_CONFIG_DIR/evtap/config.{json,yaml,yml} (where XDG_CONFIG_DIR is listed in $XDG_CONFIG_DIRS)
	//	  ~/.evtap/config.{json,yaml,yml}

	home, uErr := homedirFunc()

	// Try dir supplied via env var
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		if file, err := locater.Locate(filepath.Join(dir, "evtap")); err == nil {
			return file, nil
		}
	} else if uErr == nil { // silently ignore failure for homedir()
		// Try "default" XDG location, is user is available
		if file, err := locater.Locate(filepath.Join(home, ".config", "evtap")); err == nil {
			return file, nil
		}
	}

	// while the spec says use ":" as the separator, Go provides us
	// with filepath.ListSeparator, so use it
	if dirs := os.Getenv("XDG_CONFIG_DIRS"); dirs != "" {
		for dir := range strings.SplitSeq(dirs, string(filepath.ListSeparator)) {
			if file, err := locater.Locate(filepath.Join(dir, "evtap")); err == nil {
				return file, nil
			}
		}
	}

	if uErr == nil { // silently ignore failure for homedir()
		if file, err := locater.Locate(filepath.Join(home, ".evtap")); err == nil {
			return file, nil
		}
	}

	return "", errors.New("config file not found")
}
