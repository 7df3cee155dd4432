package options

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/maps"
	"github.com/leapstack-labs/leapnav/pkg/core"
)

// Clone returns a deep copy of opts with nested core.Options converted to
// plain maps and struct values converted to maps of their exported fields.
// Clone(nil) is nil.
func Clone(opts core.Options) core.Options {
	if opts == nil {
		return nil
	}
	return core.Options(maps.Copy(normalize(opts)))
}

// Merge deep-merges override on top of base and returns a new object.
// Neither argument is modified. The result is never nil.
func Merge(base, override core.Options) core.Options {
	out := maps.Copy(normalize(base))
	maps.Merge(maps.Copy(normalize(override)), out)
	return core.Options(out)
}

// normalize rebuilds a map tree so every nested map is a map[string]any,
// which is the only map type koanf's helpers descend into.
func normalize(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case core.Options:
		return normalize(val)
	case map[string]any:
		return normalize(val)
	case map[any]any:
		converted := make(map[string]any, len(val))
		for k, item := range val {
			converted[toKey(k)] = item
		}
		return normalize(converted)
	case []any:
		list := make([]any, len(val))
		for i, item := range val {
			list[i] = normalizeValue(item)
		}
		return list
	default:
		if m, ok := structToMap(v); ok {
			return normalize(m)
		}
		return v
	}
}

// structToMap converts a struct or non-nil struct pointer into a map keyed
// by json tag or field name. Unexported fields are dropped.
func structToMap(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	out := map[string]any{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: &out})
	if err != nil {
		return nil, false
	}
	if err := dec.Decode(rv.Interface()); err != nil {
		return nil, false
	}
	return out, true
}

func toKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", k)
}
