package fromenv

import (
	"strconv"
	"strings"
)

// childVarKey derives the variable key for a record field position. A
// `fromenv:"NAME"` tag replaces the derived key wholesale; otherwise the
// key is parentKey + sep + UPPER(name), the same bit-exact UPPER(ref)
// formula the original loader used, just applied to a Go field name
// instead of a Python identifier.
func childVarKey(parentKey, name, sep string, meta *fieldMeta) string {
	if meta != nil && meta.hasOverride {
		return meta.overrideKey
	}
	upper := strings.ToUpper(name)
	if parentKey == "" {
		return upper
	}
	return parentKey + sep + upper
}

// childVarKeyIndexed derives the variable key for an indexed container
// element (sequence or tuple item), which never carries a metadata
// override: parentKey + sep + index.
func childVarKeyIndexed(parentKey string, index int, sep string) string {
	n := strconv.Itoa(index)
	if parentKey == "" {
		return n
	}
	return parentKey + sep + n
}
