// Package starlark runs layout processors written in Starlark.
//
// A processor script is a .star file that defines functions named after the
// node types they handle (component, stack, bottomTabs, sideMenuRoot, ...).
// Each function receives the node data as a dict and the command name, and
// returns the new data dict:
//
//	commands = ["push", "showModal"]  # optional, defaults to every command
//
//	def component(data, command):
//	    data["options"]["topBar"] = {"title": {"text": data["name"]}}
//	    return data
package starlark

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/leapnav/pkg/core"
	"go.starlark.net/starlark"
)

// GoToStarlark converts a Go value to a Starlark value.
// Supported types: string, int, int64, float64, bool, []string, []any,
// map[string]any and core.Options. Dict keys are inserted in sorted order.
func GoToStarlark(v any) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}

	switch val := v.(type) {
	case string:
		return starlark.String(val), nil

	case int:
		return starlark.MakeInt(val), nil

	case int64:
		return starlark.MakeInt64(val), nil

	case float64:
		return starlark.Float(val), nil

	case bool:
		return starlark.Bool(val), nil

	case []string:
		list := make([]starlark.Value, len(val))
		for i, s := range val {
			list[i] = starlark.String(s)
		}
		return starlark.NewList(list), nil

	case []any:
		list := make([]starlark.Value, len(val))
		for i, item := range val {
			sv, err := GoToStarlark(item)
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			list[i] = sv
		}
		return starlark.NewList(list), nil

	case core.Options:
		return GoToStarlark(map[string]any(val))

	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		dict := starlark.NewDict(len(val))
		for _, k := range keys {
			sv, err := GoToStarlark(val[k])
			if err != nil {
				return nil, fmt.Errorf("dict key %q: %w", k, err)
			}
			if err := dict.SetKey(starlark.String(k), sv); err != nil {
				return nil, fmt.Errorf("dict setkey %q: %w", k, err)
			}
		}
		return dict, nil

	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

// ToGo converts a Starlark value back to a Go value.
// Returns: string, int64, float64, bool, []any, map[string]any, or nil
func ToGo(v starlark.Value) (any, error) {
	switch val := v.(type) {
	case starlark.NoneType:
		return nil, nil

	case starlark.String:
		return string(val), nil

	case starlark.Int:
		i64, ok := val.Int64()
		if !ok {
			return val.String(), nil
		}
		return i64, nil

	case starlark.Float:
		return float64(val), nil

	case starlark.Bool:
		return bool(val), nil

	case *starlark.List:
		result := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			gv, err := ToGo(val.Index(i))
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			result[i] = gv
		}
		return result, nil

	case starlark.Tuple:
		result := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			gv, err := ToGo(val.Index(i))
			if err != nil {
				return nil, fmt.Errorf("tuple index %d: %w", i, err)
			}
			result[i] = gv
		}
		return result, nil

	case *starlark.Dict:
		result := make(map[string]any, val.Len())
		for _, item := range val.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("dict key must be string, got %s", item[0].Type())
			}
			gv, err := ToGo(item[1])
			if err != nil {
				return nil, fmt.Errorf("dict key %q: %w", string(key), err)
			}
			result[string(key)] = gv
		}
		return result, nil

	default:
		return nil, fmt.Errorf("unsupported starlark type: %s", v.Type())
	}
}

// dataToStarlark exposes node data to a script. passProps stays on the Go
// side so its identity survives the call.
func dataToStarlark(data core.NodeData) (*starlark.Dict, error) {
	opts, err := GoToStarlark(map[string]any(data.Options))
	if err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}

	dict := starlark.NewDict(2)
	if err := dict.SetKey(starlark.String("name"), starlark.String(data.Name)); err != nil {
		return nil, err
	}
	if err := dict.SetKey(starlark.String("options"), opts); err != nil {
		return nil, err
	}
	return dict, nil
}

// dataFromStarlark reads a script's returned dict back into node data.
// Missing keys keep the previous values.
func dataFromStarlark(v starlark.Value, prev core.NodeData) (core.NodeData, error) {
	dict, ok := v.(*starlark.Dict)
	if !ok {
		return prev, fmt.Errorf("processor must return a dict, got %s", v.Type())
	}

	out := prev
	if name, found, err := dict.Get(starlark.String("name")); err != nil {
		return prev, err
	} else if found {
		s, ok := name.(starlark.String)
		if !ok {
			return prev, fmt.Errorf("name must be a string, got %s", name.Type())
		}
		out.Name = string(s)
	}

	if opts, found, err := dict.Get(starlark.String("options")); err != nil {
		return prev, err
	} else if found {
		gv, err := ToGo(opts)
		if err != nil {
			return prev, fmt.Errorf("options: %w", err)
		}
		m, ok := gv.(map[string]any)
		if !ok && gv != nil {
			return prev, fmt.Errorf("options must be a dict, got %s", opts.Type())
		}
		out.Options = core.Options(m)
		if out.Options == nil {
			out.Options = core.Options{}
		}
	}
	return out, nil
}
