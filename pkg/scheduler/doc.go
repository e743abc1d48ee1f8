// Package scheduler serializes component lifecycle work into a single,
// non-reentrant run loop.
//
// Producers push runnables; the scheduler drains them in strict priority
// order until every queue is empty:
//
//	destroy (FIFO) > create (FIFO) > update (FIFO) > render (LIFO) > main (FIFO)
//
// Teardown of departing components therefore happens before construction of
// new ones, construction before property updates, and updates before the
// render work they schedule. Render work is a stack, so the most recently
// scheduled render runs first.
//
// # Reentrancy
//
// A runnable may push more work. The nested Start call notices the active
// loop and returns immediately; the outer loop re-polls the queues and
// picks the new work up before it exits. Exactly one loop runs at a time.
//
// # Threading
//
// A Scheduler is owned by one logical thread and is not safe for concurrent
// use. Hosts that receive work from other goroutines must serialize calls
// themselves.
package scheduler
