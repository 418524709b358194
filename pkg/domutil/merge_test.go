package domutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDeepMerge(t *testing.T) {
	t.Run("flat override", func(t *testing.T) {
		target := map[string]any{"a": 1, "b": "x"}
		got := DeepMerge(target, map[string]any{"a": 2, "b": "y"})
		want := map[string]any{"a": 2, "b": "y"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("target-shaped: ref-only keys dropped", func(t *testing.T) {
		target := map[string]any{"a": 1}
		got := DeepMerge(target, map[string]any{"a": 2, "extra": 3})
		want := map[string]any{"a": 2}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nested maps recurse", func(t *testing.T) {
		target := map[string]any{
			"outer": map[string]any{"keep": 1, "swap": "old"},
		}
		got := DeepMerge(target, map[string]any{
			"outer": map[string]any{"swap": "new", "extra": true},
		})
		want := map[string]any{
			"outer": map[string]any{"keep": 1, "swap": "new"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nested map with no ref counterpart is untouched", func(t *testing.T) {
		target := map[string]any{"outer": map[string]any{"k": 1}}
		got := DeepMerge(target, map[string]any{"outer": "not a map"})
		want := map[string]any{"outer": map[string]any{"k": 1}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("falsy ref values are not overrides", func(t *testing.T) {
		target := map[string]any{"a": 1, "b": "x", "c": 2}
		DeepMerge(target, map[string]any{"a": 0, "b": "", "c": nil})
		assert.Equal(t, 1, target["a"])
		assert.Equal(t, "x", target["b"])
		assert.Equal(t, 2, target["c"])
	})

	t.Run("boolean false does override", func(t *testing.T) {
		target := map[string]any{"a": 1}
		DeepMerge(target, map[string]any{"a": false})
		assert.Equal(t, false, target["a"])
	})

	t.Run("mutates and returns the same map", func(t *testing.T) {
		target := map[string]any{"a": 1}
		got := DeepMerge(target, map[string]any{"a": 2})
		assert.Equal(t, 2, target["a"])
		// Returned map is the target itself, not a clone.
		got["a"] = 3
		assert.Equal(t, 3, target["a"])
	})

	t.Run("repeated merges accumulate", func(t *testing.T) {
		target := map[string]any{"a": 1, "b": 1}
		DeepMerge(target, map[string]any{"a": 2})
		DeepMerge(target, map[string]any{"b": 3})
		assert.Equal(t, map[string]any{"a": 2, "b": 3}, target)
	})

	t.Run("empty slices and maps count as truthy", func(t *testing.T) {
		target := map[string]any{"list": []any{"x"}}
		DeepMerge(target, map[string]any{"list": []any{}})
		assert.Equal(t, []any{}, target["list"])
	})
}
