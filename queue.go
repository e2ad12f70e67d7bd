package partition

// Queue Receives the identifiers of classes created by FinalizeSplit. The
// partition only ever writes to the queue; draining it and deciding what to
// split next belongs to the caller's refinement loop. Identifiers arrive in
// the order the classes' parents were first marked within a round, and no
// capacity bound is assumed.
type Queue interface {
	Enqueue(class int)
}

// QueueFunc adapts a plain function to the Queue interface.
type QueueFunc func(class int)

func (f QueueFunc) Enqueue(class int) {
	f(class)
}

// FIFOQueue is a slice-backed first-in first-out Queue for callers that do
// not need their own worklist discipline. The zero value is an empty queue.
type FIFOQueue struct {
	items []int
}

func (q *FIFOQueue) Enqueue(class int) {
	q.items = append(q.items, class)
}

// Dequeue removes and returns the oldest identifier; ok is false when the
// queue is empty.
func (q *FIFOQueue) Dequeue() (class int, ok bool) {
	if len(q.items) == 0 {
		return noIndex, false
	}
	class = q.items[0]
	q.items = q.items[1:]
	return class, true
}

// Len returns the number of identifiers waiting in the queue.
func (q *FIFOQueue) Len() int {
	return len(q.items)
}
