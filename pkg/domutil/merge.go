package domutil

// DeepMerge overlays ref's values onto target in place and returns target.
// Only keys already present on target are considered; keys that exist only
// on ref are never copied, so the result keeps target's shape. Nested maps
// recurse, using ref's map at the same key when it provides one. A primitive
// is replaced when ref's value is truthy or is a bool: false overrides, but
// 0, "" and nil read as "no override supplied". The merge mutates target, so
// repeated calls accumulate.
func DeepMerge(target, ref map[string]any) map[string]any {
	for key, tv := range target {
		if tm, ok := tv.(map[string]any); ok {
			if rm, ok := ref[key].(map[string]any); ok {
				DeepMerge(tm, rm)
			}
			continue
		}
		rv, ok := ref[key]
		if !ok {
			continue
		}
		if _, isBool := rv.(bool); isBool || truthy(rv) {
			target[key] = rv
		}
	}
	return target
}

// truthy follows script-language coercion: nil, false, numeric zero and the
// empty string are falsy; everything else, including empty maps and slices,
// is truthy.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}
