package vdom

import "sort"

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchAdd     PatchOp = iota + 1 // present in new, absent in old
	PatchReplace                    // present in both, value differs
	PatchRemove                     // present in old, absent in new
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchAdd:
		return "Add"
	case PatchReplace:
		return "Replace"
	case PatchRemove:
		return "Remove"
	default:
		return "Unknown"
	}
}

// Patch is a single attribute-like change.
type Patch struct {
	Op    PatchOp
	Key   string // attribute name; empty for single-slot patches
	Value string // new value for Add/Replace, old value for Remove
}

// Applied returns the value to write for the patch: the new value, or ""
// for a removal.
func (p Patch) Applied() string {
	if p.Op == PatchRemove {
		return ""
	}
	return p.Value
}

// Attributes maps attribute names to values.
type Attributes map[string]string

// Diff computes the patches turning ancestor into a. Add and Replace
// patches come first, then Remove patches, each group in key order.
// Unchanged keys produce no patch.
func (a Attributes) Diff(ancestor Attributes) []Patch {
	var patches []Patch
	for _, key := range sortedKeys(a) {
		value := a[key]
		old, ok := ancestor[key]
		switch {
		case !ok:
			patches = append(patches, Patch{Op: PatchAdd, Key: key, Value: value})
		case old != value:
			patches = append(patches, Patch{Op: PatchReplace, Key: key, Value: value})
		}
	}
	for _, key := range sortedKeys(ancestor) {
		if _, ok := a[key]; !ok {
			patches = append(patches, Patch{Op: PatchRemove, Key: key, Value: ancestor[key]})
		}
	}
	return patches
}

// Clone returns a copy of the map.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func (a Attributes) equal(b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

func sortedKeys(m Attributes) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DiffSlot diffs a single optional value such as an input's value or type.
// It returns nil when nothing changed.
func DiffSlot(next, ancestor *string) *Patch {
	switch {
	case next != nil && ancestor != nil:
		if *next != *ancestor {
			return &Patch{Op: PatchReplace, Value: *next}
		}
		return nil
	case next != nil:
		return &Patch{Op: PatchAdd, Value: *next}
	case ancestor != nil:
		return &Patch{Op: PatchRemove, Value: *ancestor}
	default:
		return nil
	}
}
