// Package vdom provides the virtual node model and the reconciler that
// applies it to a live host tree.
//
// # Core Types
//
// VNode is a closed union of five node kinds:
//
//   - *VTag: an element with attributes, listeners, children and the live
//     form-control properties value, type and checked
//   - *VText: a text node
//   - *VList: an ordered fragment without a live node of its own
//   - *VComp: a placeholder for a child component
//   - *VRef: an existing live node imported into the tree as-is
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    Input(Type("checkbox"), Checked(done), OnChange(toggle)),
//	)
//
// # Reconciliation
//
// Apply renders a virtual node into a parent element, reusing the live
// nodes of the ancestor (the node previously rendered at the same
// position) wherever identity matches: tags with the same name, text
// against text, components of the same type. Anything else is detached and
// created fresh. Children are correlated by position.
//
// Attributes are diffed per key into Add, Replace and Remove patches so
// unchanged keys are never touched. Inputs and textareas re-read their live
// value before diffing, and checked is written on every pass.
//
// # NodeRef
//
// A NodeRef is a shared cell through which application code observes the
// live node produced for a virtual node. References can be linked so a
// component's outer reference follows its root when the root changes.
package vdom
