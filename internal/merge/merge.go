// internal/merge/merge.go
// Package merge reconciles partial updates into existing structured
// records without data loss.
package merge

// Merge returns a new map combining target and source. For every source
// key: plain maps recurse, anything else (primitives, arrays) overwrites
// outright. Arrays are replaced, never concatenated. Keys present only in
// target survive untouched. Neither input is mutated.
func Merge(target, source map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(target)+len(source))
	for k, v := range target {
		out[k] = v
	}

	for k, sv := range source {
		sm, sourceIsMap := asPlainMap(sv)
		if !sourceIsMap {
			out[k] = sv
			continue
		}
		tm, targetIsMap := asPlainMap(out[k])
		if !targetIsMap {
			out[k] = copyMap(sm)
			continue
		}
		out[k] = Merge(tm, sm)
	}

	return out
}

func asPlainMap(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok && m != nil
}

// copyMap deep-copies a subtree so later mutation of the merged result
// cannot reach back into the source.
func copyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if nested, ok := asPlainMap(v); ok {
			out[k] = copyMap(nested)
		} else {
			out[k] = v
		}
	}
	return out
}
