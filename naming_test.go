package fromenv

import "testing"

func TestChildVarKey(t *testing.T) {
	cases := []struct {
		name      string
		parentKey string
		fieldName string
		sep       string
		meta      *fieldMeta
		want      string
	}{
		{name: "root field", parentKey: "", fieldName: "Port", sep: "_", want: "PORT"},
		{name: "nested field", parentKey: "DB", fieldName: "Host", sep: "_", want: "DB_HOST"},
		{name: "custom separator", parentKey: "DB", fieldName: "Host", sep: ".", want: "DB.HOST"},
		{
			name: "override wins outright", parentKey: "DB", fieldName: "Host", sep: "_",
			meta: &fieldMeta{overrideKey: "DATABASE_HOST", hasOverride: true},
			want: "DATABASE_HOST",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := childVarKey(c.parentKey, c.fieldName, c.sep, c.meta)
			if got != c.want {
				t.Errorf("childVarKey(%q, %q, %q) = %q, want %q", c.parentKey, c.fieldName, c.sep, got, c.want)
			}
		})
	}
}

func TestChildVarKeyIndexed(t *testing.T) {
	cases := []struct {
		name      string
		parentKey string
		index     int
		sep       string
		want      string
	}{
		{name: "root sequence", parentKey: "LIST", index: 0, sep: "_", want: "LIST_0"},
		{name: "second element", parentKey: "LIST", index: 1, sep: "_", want: "LIST_1"},
		{name: "empty parent", parentKey: "", index: 3, sep: "_", want: "3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := childVarKeyIndexed(c.parentKey, c.index, c.sep)
			if got != c.want {
				t.Errorf("childVarKeyIndexed(%q, %d, %q) = %q, want %q", c.parentKey, c.index, c.sep, got, c.want)
			}
		})
	}
}
