package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VText {
	return NewText(content)
}

// Textf creates a text node with formatted content.
func Textf(format string, args ...any) *VText {
	return NewText(fmt.Sprintf(format, args...))
}

// Fragment groups children without a wrapper element.
// Accepts the same child arguments as element factories: VNode, []VNode
// and string.
func Fragment(children ...any) *VList {
	list := NewList()
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case string:
			list.AddChild(NewText(v))
		case []VNode:
			for _, n := range v {
				if !isNilNode(n) {
					list.AddChild(n)
				}
			}
		case VNode:
			if !isNilNode(v) {
				list.AddChild(v)
			}
		default:
			panic(fmt.Sprintf("vdom: unsupported fragment child %T", child))
		}
	}
	return list
}

// If returns node if condition is true, nil otherwise.
func If(condition bool, node VNode) VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns ifTrue if condition is true, ifFalse otherwise.
func IfElse(condition bool, ifTrue, ifFalse VNode) VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When calls fn only when condition is true.
func When(condition bool, fn func() VNode) VNode {
	if condition {
		return fn()
	}
	return nil
}

// Unless returns node if condition is false.
func Unless(condition bool, node VNode) VNode {
	return If(!condition, node)
}

// Range maps items to nodes.
func Range[T any](items []T, fn func(item T, index int) VNode) []VNode {
	out := make([]VNode, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); !isNilNode(n) {
			out = append(out, n)
		}
	}
	return out
}
