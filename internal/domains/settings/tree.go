package settings

import "strings"

// SettingsTree is a nested string-keyed document, the shape produced by
// decoding the app settings JSON: leaves are scalars or arrays, branches are
// nested maps.
type SettingsTree map[string]any

// asTree reports whether v is a branch. Trees built in code carry the named
// type, trees decoded from JSON carry map[string]any; both count.
func asTree(v any) (SettingsTree, bool) {
	switch t := v.(type) {
	case SettingsTree:
		return t, true
	case map[string]any:
		return SettingsTree(t), true
	}
	return nil, false
}

// Merge fills gaps in loaded from defaults without discarding anything the
// user saved. The result starts as a copy of defaults; every loaded key
// overwrites, except where both sides hold a subtree, which merges
// recursively. Type mismatches are accepted as-is: a loaded scalar replaces
// a default subtree and vice versa. Neither input is modified.
func Merge(defaults, loaded SettingsTree) SettingsTree {
	merged := make(SettingsTree, len(defaults)+len(loaded))
	for k, v := range defaults {
		merged[k] = v
	}

	for key, value := range loaded {
		existing, present := merged[key]
		if present {
			dt, dok := asTree(existing)
			lt, lok := asTree(value)
			if dok && lok {
				merged[key] = Merge(dt, lt)
				continue
			}
		}
		merged[key] = value
	}

	return merged
}

// Clone deep-copies the tree. Branches are copied recursively, arrays are
// copied shallowly per element, scalars are shared (they are immutable).
func (t SettingsTree) Clone() SettingsTree {
	out := make(SettingsTree, len(t))
	for k, v := range t {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	if sub, ok := asTree(v); ok {
		return map[string]any(sub.Clone())
	}
	if arr, ok := v.([]any); ok {
		cp := make([]any, len(arr))
		for i, e := range arr {
			cp[i] = cloneValue(e)
		}
		return cp
	}
	return v
}

// Get walks a dotted path ("audio.sample_rate") and returns the value there.
func (t SettingsTree) Get(path string) (any, bool) {
	parts := strings.Split(path, ".")
	cur := t
	for i, p := range parts {
		v, ok := cur[p]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		sub, ok := asTree(v)
		if !ok {
			return nil, false
		}
		cur = sub
	}
	return nil, false
}

// Set writes value at a dotted path, creating intermediate branches as
// needed. A non-branch in the middle of the path is replaced; the document
// is schemaless on purpose.
func (t SettingsTree) Set(path string, value any) {
	parts := strings.Split(path, ".")
	cur := t
	for i, p := range parts {
		if i == len(parts)-1 {
			cur[p] = value
			return
		}
		sub, ok := asTree(cur[p])
		if !ok {
			sub = SettingsTree{}
			cur[p] = map[string]any(sub)
		}
		cur = sub
	}
}

// Typed accessors with coercion: JSON decoding turns every number into
// float64, while trees built in code keep int literals. Callers reading
// knobs out of the document should not care which world the value came from.

func (t SettingsTree) GetString(path, fallback string) string {
	if v, ok := t.Get(path); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}

func (t SettingsTree) GetBool(path string, fallback bool) bool {
	if v, ok := t.Get(path); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

func (t SettingsTree) GetFloat(path string, fallback float64) float64 {
	v, ok := t.Get(path)
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return fallback
}

func (t SettingsTree) GetInt(path string, fallback int) int {
	v, ok := t.Get(path)
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	}
	return fallback
}
