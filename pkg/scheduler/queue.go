package scheduler

type task struct {
	r     Runnable
	queue string
}

// fifo is a slice-backed queue. Popped slots are cleared so finished
// runnables can be collected.
type fifo struct {
	items []task
	head  int
}

func (q *fifo) push(t task) {
	q.items = append(q.items, t)
}

func (q *fifo) pop() (task, bool) {
	if q.head >= len(q.items) {
		return task{}, false
	}
	t := q.items[q.head]
	q.items[q.head] = task{}
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return t, true
}

func (q *fifo) len() int {
	return len(q.items) - q.head
}

type lifo struct {
	items []task
}

func (q *lifo) push(t task) {
	q.items = append(q.items, t)
}

func (q *lifo) pop() (task, bool) {
	n := len(q.items)
	if n == 0 {
		return task{}, false
	}
	t := q.items[n-1]
	q.items[n-1] = task{}
	q.items = q.items[:n-1]
	return t, true
}

func (q *lifo) len() int {
	return len(q.items)
}
