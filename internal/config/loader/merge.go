package loader

import "strings"

// DeepMerge merges layers left to right into a new map; later layers win.
// Nested maps are merged key by key, anything else is replaced. Inputs are
// not modified.
func DeepMerge(layers ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, layer := range layers {
		mergeInto(out, layer)
	}
	return out
}

func mergeInto(dst, src map[string]any) {
	for key, val := range src {
		srcMap, ok := val.(map[string]any)
		if !ok {
			dst[key] = val
			continue
		}
		dstMap, ok := dst[key].(map[string]any)
		if !ok {
			dstMap = make(map[string]any, len(srcMap))
			dst[key] = dstMap
		}
		mergeInto(dstMap, srcMap)
	}
}

// Lookup returns the value at a dot separated path such as "log.level".
func Lookup(config map[string]any, path string) (any, bool) {
	var cur any = config
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// SetPath stores value at a dot separated path, creating intermediate maps.
func SetPath(config map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	cur := config
	for _, part := range parts[:len(parts)-1] {
		next, ok := cur[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			cur[part] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = value
}
