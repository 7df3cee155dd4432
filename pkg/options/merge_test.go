package options

import (
	"testing"

	"github.com/leapstack-labs/leapnav/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		base     core.Options
		override core.Options
		want     core.Options
	}{
		{
			name: "both nil",
			want: core.Options{},
		},
		{
			name: "override wins on leaf conflict",
			base: core.Options{"topBar": map[string]any{"visible": false, "title": "Static"}},
			override: core.Options{"topBar": map[string]any{"title": "Caller"}},
			want: core.Options{"topBar": map[string]any{"visible": false, "title": "Caller"}},
		},
		{
			name: "animations merged per sub-key",
			base: core.Options{"animations": map[string]any{
				"push": map[string]any{"enabled": true},
				"pop":  map[string]any{"enabled": true, "waitForRender": true},
			}},
			override: core.Options{"animations": map[string]any{
				"pop": map[string]any{"enabled": false},
			}},
			want: core.Options{"animations": map[string]any{
				"push": map[string]any{"enabled": true},
				"pop":  map[string]any{"enabled": false, "waitForRender": true},
			}},
		},
		{
			name:     "nested core.Options are merged like plain maps",
			base:     core.Options{"layout": core.Options{"orientation": []any{"portrait"}}},
			override: core.Options{"layout": core.Options{"backgroundColor": "white"}},
			want: core.Options{"layout": map[string]any{
				"orientation":     []any{"portrait"},
				"backgroundColor": "white",
			}},
		},
		{
			name:     "scalar replaces map",
			base:     core.Options{"topBar": map[string]any{"visible": false}},
			override: core.Options{"topBar": nil},
			want:     core.Options{"topBar": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.base, tt.override)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	base := core.Options{"topBar": map[string]any{"visible": false}}
	override := core.Options{"topBar": map[string]any{"title": "Caller"}}

	got := Merge(base, override)
	got["topBar"].(map[string]any)["visible"] = true

	assert.Equal(t, core.Options{"topBar": map[string]any{"visible": false}}, base)
	assert.Equal(t, core.Options{"topBar": map[string]any{"title": "Caller"}}, override)
}

func TestClone(t *testing.T) {
	assert.Nil(t, Clone(nil))

	in := core.Options{
		"topBar": map[string]any{"buttons": []any{map[string]any{"id": "save"}}},
		"keys":   map[any]any{1: "one"},
	}
	out := Clone(in)
	require.Equal(t, core.Options{
		"topBar": map[string]any{"buttons": []any{map[string]any{"id": "save"}}},
		"keys":   map[string]any{"1": "one"},
	}, out)

	out["topBar"].(map[string]any)["buttons"].([]any)[0].(map[string]any)["id"] = "changed"
	assert.Equal(t, "save", in["topBar"].(map[string]any)["buttons"].([]any)[0].(map[string]any)["id"])
}

type titleOptions struct {
	Text string `json:"text"`
}

type topBarOptions struct {
	Visible bool         `json:"visible"`
	Title   titleOptions `json:"title"`
	Height  int
	hidden  string
}

func TestClone_StructValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "struct", value: topBarOptions{Visible: true, Title: titleOptions{Text: "x"}, Height: 44, hidden: "h"}},
		{name: "pointer", value: &topBarOptions{Visible: true, Title: titleOptions{Text: "x"}, Height: 44, hidden: "h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Clone(core.Options{"topBar": tt.value})
			assert.Equal(t, core.Options{"topBar": map[string]any{
				"visible": true,
				"title":   map[string]any{"text": "x"},
				"Height":  44,
			}}, out)
		})
	}
}

func TestMerge_StructBase(t *testing.T) {
	base := core.Options{"topBar": topBarOptions{Visible: true, Title: titleOptions{Text: "Static"}}}
	override := core.Options{"topBar": map[string]any{"title": map[string]any{"text": "Caller"}}}

	got := Merge(base, override)
	assert.Equal(t, core.Options{"topBar": map[string]any{
		"visible": true,
		"title":   map[string]any{"text": "Caller"},
		"Height":  0,
	}}, got)
}
