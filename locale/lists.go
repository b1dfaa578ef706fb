package locale

// Index-addressed editing helpers for the array-valued sub-lists carried in
// structured content (feature blocks, stats, tabs). Items have no identity
// beyond their array position; every operation returns a new slice and leaves
// the input untouched. Reordering is not supported at this layer.

// AppendItem appends a copy of the default-shaped element.
func AppendItem(list []any, def map[string]any) []any {
	out := make([]any, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, cloneShallow(def))
	return out
}

// RemoveItem filters out the element at index. Out-of-range indexes return
// the list unchanged.
func RemoveItem(list []any, index int) []any {
	if index < 0 || index >= len(list) {
		return list
	}
	out := make([]any, 0, len(list)-1)
	out = append(out, list[:index]...)
	out = append(out, list[index+1:]...)
	return out
}

// MergeItem replaces the element at index with a shallow-merged copy of the
// existing element and the patch. Non-map elements are replaced wholesale by
// the patch. Out-of-range indexes return the list unchanged.
func MergeItem(list []any, index int, patch map[string]any) []any {
	if index < 0 || index >= len(list) {
		return list
	}

	out := make([]any, len(list))
	copy(out, list)

	existing, ok := out[index].(map[string]any)
	if !ok {
		out[index] = cloneShallow(patch)
		return out
	}

	merged := cloneShallow(existing)
	for key, val := range patch {
		merged[key] = val
	}
	out[index] = merged
	return out
}

func cloneShallow(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for key, val := range src {
		out[key] = val
	}
	return out
}
