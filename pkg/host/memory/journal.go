package memory

import (
	"fmt"

	"github.com/vango-dev/djed/pkg/host"
)

// MutationOp identifies a recorded document mutation.
type MutationOp uint8

const (
	OpCreateElement MutationOp = iota + 1
	OpCreateText
	OpInsert
	OpRemove
	OpSetAttribute
	OpRemoveAttribute
	OpSetValue
	OpSetType
	OpSetChecked
	OpSetData
	OpAddListener
	OpReleaseListener
)

// String returns the string representation of the MutationOp.
func (op MutationOp) String() string {
	switch op {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpInsert:
		return "Insert"
	case OpRemove:
		return "Remove"
	case OpSetAttribute:
		return "SetAttribute"
	case OpRemoveAttribute:
		return "RemoveAttribute"
	case OpSetValue:
		return "SetValue"
	case OpSetType:
		return "SetType"
	case OpSetChecked:
		return "SetChecked"
	case OpSetData:
		return "SetData"
	case OpAddListener:
		return "AddListener"
	case OpReleaseListener:
		return "ReleaseListener"
	default:
		return "Unknown"
	}
}

// Mutation is a single journal entry.
type Mutation struct {
	Op     MutationOp
	Target host.Node // node the operation was invoked on
	Child  host.Node // inserted or removed child
	Ref    host.Node // insertion anchor, nil for append
	Name   string    // tag, attribute or event name
	Value  string
}

// String formats the mutation for test failure output.
func (m Mutation) String() string {
	switch m.Op {
	case OpInsert:
		return fmt.Sprintf("%s %v into %v before %v", m.Op, m.Child, m.Target, m.Ref)
	case OpRemove:
		return fmt.Sprintf("%s %v from %v", m.Op, m.Child, m.Target)
	case OpSetAttribute:
		return fmt.Sprintf("%s %v %s=%q", m.Op, m.Target, m.Name, m.Value)
	case OpRemoveAttribute, OpAddListener, OpReleaseListener:
		return fmt.Sprintf("%s %v %s", m.Op, m.Target, m.Name)
	default:
		return fmt.Sprintf("%s %v %q", m.Op, m.Target, m.Value)
	}
}

// Filter returns the mutations with one of the given ops.
func Filter(journal []Mutation, ops ...MutationOp) []Mutation {
	var out []Mutation
	for _, m := range journal {
		for _, op := range ops {
			if m.Op == op {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// Count returns the number of mutations with the given op.
func Count(journal []Mutation, op MutationOp) int {
	return len(Filter(journal, op))
}
