package fromenv

import (
	"reflect"
	"testing"
)

type tagsTestRecord struct {
	Name     string
	Port     int    `envDefault:"8080"`
	Host     string `fromenv:"DATABASE_HOST"`
	hidden   string
	Aliased  string `fromenv:"ALIAS" envDefault:"\"x\""`
}

func TestBuildRecordFields(t *testing.T) {
	fs := buildRecordFields(reflect.TypeOf(tagsTestRecord{}))

	if len(fs) != 4 {
		t.Fatalf("len(fields) = %d, want 4 (unexported field must be skipped)", len(fs))
	}

	byName := make(map[string]recordField, len(fs))
	for _, f := range fs {
		byName[f.name] = f
	}

	if f := byName["Name"]; f.meta.hasOverride || f.meta.hasDefault {
		t.Errorf("Name field should carry no metadata, got %+v", f.meta)
	}
	if f := byName["Port"]; !f.meta.hasDefault || f.meta.defaultRaw != "8080" {
		t.Errorf("Port field default = %+v, want hasDefault with raw 8080", f.meta)
	}
	if f := byName["Host"]; !f.meta.hasOverride || f.meta.overrideKey != "DATABASE_HOST" {
		t.Errorf("Host field override = %+v, want DATABASE_HOST", f.meta)
	}
	if f := byName["Aliased"]; !f.meta.hasOverride || !f.meta.hasDefault {
		t.Errorf("Aliased field should carry both override and default, got %+v", f.meta)
	}
}

func TestRecordFieldsCaches(t *testing.T) {
	t1 := reflect.TypeOf(tagsTestRecord{})
	a := recordFields(t1)
	b := recordFields(t1)
	if len(a) != len(b) {
		t.Fatalf("cached call returned different field count: %d vs %d", len(a), len(b))
	}
}

type defaultTargetRecord struct {
	Count int
	Label string
}

func TestDecodeDefault(t *testing.T) {
	v, err := decodeDefault("42", reflect.TypeOf(0), "x.Count")
	if err != nil {
		t.Fatalf("decodeDefault(int) error: %v", err)
	}
	if v.Int() != 42 {
		t.Errorf("decodeDefault(int) = %d, want 42", v.Int())
	}

	v, err = decodeDefault(`"hello"`, reflect.TypeOf(""), "x.Label")
	if err != nil {
		t.Fatalf("decodeDefault(string) error: %v", err)
	}
	if v.String() != "hello" {
		t.Errorf("decodeDefault(string) = %q, want hello", v.String())
	}

	v, err = decodeDefault(`{"Count":1,"Label":"a"}`, reflect.TypeOf(defaultTargetRecord{}), "x.Rec")
	if err != nil {
		t.Fatalf("decodeDefault(record) error: %v", err)
	}
	got := v.Interface().(defaultTargetRecord)
	if got.Count != 1 || got.Label != "a" {
		t.Errorf("decodeDefault(record) = %+v, want {1 a}", got)
	}

	if _, err := decodeDefault("not json", reflect.TypeOf(0), "x.Bad"); err == nil {
		t.Fatal("expected error for malformed JSON default")
	}
}
