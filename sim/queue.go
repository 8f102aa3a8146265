// Implements the ReadyQueue, which holds the names of processes waiting for the CPU.
// Names are enqueued on arrival and on quantum expiry.

package sim

import (
	"strings"
)

// ReadyQueue represents a FIFO queue of process names waiting to be dispatched.
// Round-Robin is the only policy that needs arrival order; the others keep keyed bookkeeping.
type ReadyQueue struct {
	queue []string // FIFO queue of process names
}

// Enqueue adds a process name to the back of the queue.
func (rq *ReadyQueue) Enqueue(name string) {
	rq.queue = append(rq.queue, name)
}

func (rq *ReadyQueue) String() string {
	return "[" + strings.Join(rq.queue, " ") + "]"
}

// Len returns the number of waiting processes.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the name at the front of the queue without removing it.
// The boolean is false when the queue is empty.
func (rq *ReadyQueue) Peek() (string, bool) {
	if len(rq.queue) == 0 {
		return "", false
	}
	return rq.queue[0], true
}

// Dequeue removes and returns the name at the front of the queue.
func (rq *ReadyQueue) Dequeue() (string, bool) {
	if len(rq.queue) == 0 {
		return "", false
	}
	name := rq.queue[0]
	rq.queue = rq.queue[1:]
	return name, true
}

// Names returns a copy of the queue contents, front first.
func (rq *ReadyQueue) Names() []string {
	out := make([]string, len(rq.queue))
	copy(out, rq.queue)
	return out
}
