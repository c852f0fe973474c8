package evtap

import (
	pdebug "github.com/lestrrat-go/pdebug"

	"github.com/evtap/evtap/ecodes"
)

// category binds an event type to its name table, its classifier and
// its default fallback policy.
type category struct {
	name         string
	typ          uint16
	table        *ecodes.NameTable
	allowUnknown bool
	bind         func(tbl *ecodes.NameTable) ClassifierFunc
}

// categories lists the standard event categories. Only syn defaults
// to the hex fallback; see NewSynEvent.
var categories = []category{
	{name: "key", typ: ecodes.EV_KEY, table: ecodes.KEY, allowUnknown: false, bind: keyClassifier},
	{name: "rel", typ: ecodes.EV_REL, table: ecodes.REL, allowUnknown: false, bind: relClassifier},
	{name: "abs", typ: ecodes.EV_ABS, table: ecodes.ABS, allowUnknown: false, bind: absClassifier},
	{name: "syn", typ: ecodes.EV_SYN, table: ecodes.SYN, allowUnknown: true, bind: synClassifier},
}

func keyClassifier(tbl *ecodes.NameTable) ClassifierFunc {
	return func(ev *InputEvent, allowUnknown bool) (Categorized, error) {
		ke, err := newKeyEvent(tbl, ev, allowUnknown)
		if err != nil {
			return nil, err
		}
		return ke, nil
	}
}

func relClassifier(tbl *ecodes.NameTable) ClassifierFunc {
	return func(ev *InputEvent, allowUnknown bool) (Categorized, error) {
		re, err := newRelEvent(tbl, ev, allowUnknown)
		if err != nil {
			return nil, err
		}
		return re, nil
	}
}

func absClassifier(tbl *ecodes.NameTable) ClassifierFunc {
	return func(ev *InputEvent, allowUnknown bool) (Categorized, error) {
		ae, err := newAbsEvent(tbl, ev, allowUnknown)
		if err != nil {
			return nil, err
		}
		return ae, nil
	}
}

func synClassifier(tbl *ecodes.NameTable) ClassifierFunc {
	return func(ev *InputEvent, allowUnknown bool) (Categorized, error) {
		se, err := newSynEvent(tbl, ev, allowUnknown)
		if err != nil {
			return nil, err
		}
		return se, nil
	}
}

// NewCategorizer returns a Categorizer with the four standard
// categories registered against the builtin name tables.
func NewCategorizer() *Categorizer {
	c := &Categorizer{factory: make(map[uint16]classifier)}
	for _, cat := range categories {
		c.Register(cat.typ, cat.bind(cat.table), cat.allowUnknown)
	}
	return c
}

// Register adds or replaces the classifier for an event type. It is
// meant to be called during setup; the mapping must not change once
// Categorize is being called.
func (c *Categorizer) Register(typ uint16, fn ClassifierFunc, allowUnknown bool) {
	c.factory[typ] = classifier{construct: fn, allowUnknown: allowUnknown}
}

// Categorize converts ev into the typed event its type designates.
// An event whose type has no registered classifier is returned
// unchanged; that is deliberate, so unregistered categories degrade
// gracefully instead of erroring.
func (c *Categorizer) Categorize(ev *InputEvent) (cat Categorized, err error) {
	if pdebug.Enabled {
		g := pdebug.Marker("Categorizer.Categorize type=%d code=%d", ev.Type, ev.Code).BindError(&err)
		defer g.End()
	}

	cl, ok := c.factory[ev.Type]
	if !ok {
		return ev, nil
	}

	cat, err = cl.construct(ev, cl.allowUnknown)
	return cat, err
}

var defaultCategorizer = NewCategorizer()

// Categorize runs ev through the process-wide default Categorizer.
func Categorize(ev *InputEvent) (Categorized, error) {
	return defaultCategorizer.Categorize(ev)
}
