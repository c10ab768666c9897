package fromenv

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// recordField describes one decodable field of a record type: its name
// (used for key derivation unless overridden), declared type, struct
// field index and parsed metadata.
type recordField struct {
	name  string
	typ   reflect.Type
	index int
	meta  *fieldMeta
}

var fieldCache = newRecordFieldCache()

// recordFields returns the decodable fields of record type t in
// declaration order, parsing and caching `fromenv`/`envDefault` struct
// tags the same way gandaldf-sqlr's fieldIndexMap parses and caches `db`
// tags keyed by struct type.
func recordFields(t reflect.Type) []recordField {
	if fs, ok := fieldCache.get(t); ok {
		return fs
	}
	fs := buildRecordFields(t)
	fieldCache.put(t, fs)
	return fs
}

func buildRecordFields(t reflect.Type) []recordField {
	fields := make([]recordField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		meta := &fieldMeta{}
		if name, ok := f.Tag.Lookup("fromenv"); ok {
			name = strings.TrimSpace(name)
			if name != "" && name != "-" {
				meta.overrideKey = name
				meta.hasOverride = true
			}
		}
		if def, ok := f.Tag.Lookup("envDefault"); ok {
			meta.defaultRaw = def
			meta.hasDefault = true
		}
		fields = append(fields, recordField{
			name:  f.Name,
			typ:   f.Type,
			index: i,
			meta:  meta,
		})
	}
	return fields
}

// recordFieldCache is a small mutex-guarded cache from struct type to its
// parsed field list, grounded on the two-tier generation cache in
// gandaldf-sqlr's fieldCache/planCache, simplified to a single generation:
// schema types are few and long-lived relative to a decode call, so the
// curr/prev rotation that bounds the teacher's per-query-shape cache isn't
// needed here.
type recordFieldCache struct {
	mu sync.RWMutex
	m  map[reflect.Type][]recordField
}

func newRecordFieldCache() *recordFieldCache {
	return &recordFieldCache{m: make(map[reflect.Type][]recordField)}
}

func (c *recordFieldCache) get(t reflect.Type) ([]recordField, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fs, ok := c.m[t]
	return fs, ok
}

func (c *recordFieldCache) put(t reflect.Type, fs []recordField) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[t] = fs
}

// decodeDefault parses a field's envDefault literal into a reflect.Value of
// typ. It is the one mechanism that serves scalar, record, sequence, tuple
// and optional defaults alike: the literal is always JSON, decoded lazily,
// only once the zero-footprint rule says a default is actually needed.
func decodeDefault(raw string, typ reflect.Type, qual string) (reflect.Value, error) {
	ptr := reflect.New(typ)
	if err := json.Unmarshal([]byte(raw), ptr.Interface()); err != nil {
		return reflect.Value{}, &SchemaError{Message: "fromenv: invalid default for " + qual + ": " + err.Error()}
	}
	return ptr.Elem(), nil
}
