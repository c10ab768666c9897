package fromenv

import (
	"fmt"
	"reflect"
)

// fieldMeta carries the metadata inherited from an enclosing record field,
// parsed once from its struct tags: an optional key override and/or a
// literal JSON default.
type fieldMeta struct {
	overrideKey string
	hasOverride bool
	defaultRaw  string
	hasDefault  bool
}

// position describes one schema node the decoder is currently trying to
// fill: the Go type to decode into, the flat variable key that would hold
// its scalar (or sentinel) form, and the dotted/indexed qualified name used
// in diagnostics.
type position struct {
	typ  reflect.Type
	key  string
	qual string
	meta *fieldMeta
}

func rootPosition(typ reflect.Type, prefix string) position {
	key := prefix
	qual := typ.Name()
	if qual == "" {
		qual = typ.String()
	}
	return position{typ: typ, key: key, qual: qual}
}

// fieldChild builds the child position for a named record field.
func fieldChild(parent position, name string, typ reflect.Type, sep string, meta *fieldMeta) position {
	return position{
		typ:  typ,
		key:  childVarKey(parent.key, name, sep, meta),
		qual: parent.qual + "." + name,
		meta: meta,
	}
}

// indexChild builds the child position for an indexed container element
// (sequence, fixed tuple or any-length tuple).
func indexChild(parent position, index int, typ reflect.Type, sep string) position {
	return position{
		typ:  typ,
		key:  childVarKeyIndexed(parent.key, index, sep),
		qual: fmt.Sprintf("%s[%d]", parent.qual, index),
	}
}

// retype keeps the same key/qual/meta but swaps the type, used by Optional
// and Union to recurse into an inner/alternative type without deriving a
// new child key: they share the parent position's key by construction.
func (p position) retype(typ reflect.Type) position {
	return position{typ: typ, key: p.key, qual: p.qual, meta: p.meta}
}
