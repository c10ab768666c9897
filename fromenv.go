package fromenv

import (
	"fmt"
	"reflect"
)

// Config carries the decoder's options: key prefix, component separator
// and handler order. It is passed as a trailing variadic argument and
// merged against defaults by defaultConfig, the same shape
// gandaldf-sqlr's func New(dialect Dialect, cfg ...Config) *SQLR uses.
type Config struct {
	// Prefix is prepended to the root record's variable key. Empty by
	// default, so a top-level field named Port derives key "PORT" rather
	// than "<PREFIX>_PORT".
	Prefix string
	// Sep separates key components. Defaults to "_".
	Sep string
	// Handlers overrides the default dispatch order. Reorder or drop
	// entries from DefaultHandlers() to change precedence; nil selects
	// DefaultHandlers().
	Handlers []Handler
}

func defaultConfig(config ...Config) Config {
	var c Config
	if len(config) > 0 {
		c = config[0]
	}
	if c.Sep == "" {
		c.Sep = "_"
	}
	if c.Handlers == nil {
		c.Handlers = DefaultHandlers()
	}
	return c
}

// Decode materializes a value of type T from a flat mapping of string keys
// to string values, following the schema described by T's struct fields.
// T must be a struct type (a record); every exported field is decoded
// according to the kind mapping described in the package doc.
//
// The input map is never mutated, and no key is ever bound to more than
// one schema position: a key claimed by one field and then demanded again
// by another is reported as an AmbiguousVarError. A field that carries an
// envDefault does not demand its key: when that key is already claimed,
// the field takes its default instead.
func Decode[T any](input map[string]string, config ...Config) (T, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	if rt == nil || rt.Kind() != reflect.Struct || isOptional(rt) || isUnion(rt) || isFixedTuple(rt) {
		return zero, &SchemaError{Message: fmt.Sprintf("fromenv: root schema must be a record (plain struct), got %v", rt)}
	}

	cfg := defaultConfig(config...)
	strat := &strategy{cfg: cfg, handlers: cfg.Handlers}
	env := newLedger(input)
	root := rootPosition(rt, cfg.Prefix)

	h, err := strat.resolve(root)
	if err != nil {
		return zero, err
	}
	val, err := h.decode(root, env, strat)
	if err != nil {
		return zero, err
	}
	out, ok := val.Interface().(T)
	if !ok {
		return zero, &SchemaError{Message: "fromenv: internal: decoded value does not match T"}
	}
	return out, nil
}
