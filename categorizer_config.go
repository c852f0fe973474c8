package evtap

import (
	"github.com/pkg/errors"

	"github.com/evtap/evtap/config"
)

// NewCategorizerFromConfig builds a Categorizer with cfg's policy
// applied on top of the builtin tables and defaults: per-category
// fallback overrides, and extra code names layered over the ecodes
// tables. The builtin tables themselves are never touched.
func NewCategorizerFromConfig(cfg *config.Config) (*Categorizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := &Categorizer{factory: make(map[uint16]classifier)}
	for _, cat := range categories {
		tbl := cat.table
		if extra, ok := cfg.Names[cat.name]; ok {
			tbl = tbl.WithNames(extra)
		}

		allow := cat.allowUnknown
		if v, ok := cfg.AllowUnknown[cat.name]; ok {
			allow = v
		}

		c.Register(cat.typ, cat.bind(tbl), allow)
	}
	return c, nil
}
