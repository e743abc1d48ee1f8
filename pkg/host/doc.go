// Package host defines the live node tree that virtual nodes are reconciled
// against.
//
// The diff engine never talks to a concrete document. It creates, inserts,
// removes and mutates nodes exclusively through the interfaces in this
// package, so the same reconciliation code can drive a browser DOM bridge,
// a terminal renderer or the in-memory document in package memory.
//
// # Fallibility
//
// Mutating operations return errors. Callers in the diff engine treat them
// as recoverable: the failure is logged and the single mutation is skipped.
//
// # Form controls
//
// Inputs, textareas and buttons expose live properties (value, type,
// checked) that diverge from their attributes once a user interacts with
// them. Elements that support those properties implement ValueControl,
// TypeControl or CheckControl in addition to Element.
package host
