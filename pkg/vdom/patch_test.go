package vdom

import "testing"

func TestAttributesDiff(t *testing.T) {
	tests := []struct {
		name     string
		next     Attributes
		ancestor Attributes
		want     []Patch
	}{
		{
			name:     "identical",
			next:     Attributes{"a": "1"},
			ancestor: Attributes{"a": "1"},
			want:     nil,
		},
		{
			name:     "add and remove",
			next:     Attributes{"a": "1", "c": "3"},
			ancestor: Attributes{"a": "1", "b": "2"},
			want: []Patch{
				{Op: PatchAdd, Key: "c", Value: "3"},
				{Op: PatchRemove, Key: "b", Value: "2"},
			},
		},
		{
			name:     "replace",
			next:     Attributes{"a": "2"},
			ancestor: Attributes{"a": "1"},
			want:     []Patch{{Op: PatchReplace, Key: "a", Value: "2"}},
		},
		{
			name:     "nil ancestor adds everything in key order",
			next:     Attributes{"z": "1", "m": "2"},
			ancestor: nil,
			want: []Patch{
				{Op: PatchAdd, Key: "m", Value: "2"},
				{Op: PatchAdd, Key: "z", Value: "1"},
			},
		},
		{
			name:     "removals come after additions",
			next:     Attributes{"z": "1"},
			ancestor: Attributes{"a": "x"},
			want: []Patch{
				{Op: PatchAdd, Key: "z", Value: "1"},
				{Op: PatchRemove, Key: "a", Value: "x"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.next.Diff(tt.ancestor)
			if len(got) != len(tt.want) {
				t.Fatalf("Diff() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("patch[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDiffSlot(t *testing.T) {
	s := func(v string) *string { return &v }
	tests := []struct {
		name           string
		next, ancestor *string
		want           *Patch
	}{
		{"both absent", nil, nil, nil},
		{"unchanged", s("a"), s("a"), nil},
		{"replace", s("b"), s("a"), &Patch{Op: PatchReplace, Value: "b"}},
		{"add", s("a"), nil, &Patch{Op: PatchAdd, Value: "a"}},
		{"remove", nil, s("a"), &Patch{Op: PatchRemove, Value: "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffSlot(tt.next, tt.ancestor)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("DiffSlot() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("DiffSlot() = %+v, want %+v", *got, *tt.want)
			}
		})
	}
}

func TestPatchApplied(t *testing.T) {
	if v := (Patch{Op: PatchRemove, Value: "old"}).Applied(); v != "" {
		t.Errorf("Remove applies %q, want empty", v)
	}
	if v := (Patch{Op: PatchAdd, Value: "new"}).Applied(); v != "new" {
		t.Errorf("Add applies %q, want new", v)
	}
}

func TestPatchOpString(t *testing.T) {
	tests := map[PatchOp]string{
		PatchAdd:     "Add",
		PatchReplace: "Replace",
		PatchRemove:  "Remove",
		PatchOp(0):   "Unknown",
	}
	for op, want := range tests {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", op, got, want)
		}
	}
}
