// Package vtest provides testing helpers for djed components.
//
// Mount renders a component into an in-memory document on an isolated
// scheduler and returns a Harness for driving and inspecting it.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.Mount(t, NewCounter, 0)
//	    h.Click(h.Find("button"))
//	    h.ExpectContains("<span>1</span>")
//	}
//
// # Mutation Journal
//
// Every host mutation is journaled, so tests can assert how much work a
// render did, not just its result:
//
//	h.ResetJournal()
//	h.Send(Increment{})
//	if n := memory.Count(h.Journal(), memory.OpSetData); n != 1 {
//	    t.Errorf("expected one text update, got %d", n)
//	}
//
// # Render Assertions
//
//	h.ExpectContains("Welcome")
//	h.ExpectNotContains("Error")
//	h.ExpectElement("button")
//	h.ExpectAttribute("class", "active")
package vtest
