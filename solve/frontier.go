package solve

// frontier is the container of pending work: a queue for BFS, a stack for DFS.
type frontier[T any] interface {
	push(T)
	pop() T
	len() int
}

// queue is a FIFO backed by a slice with a moving head.
type queue[T any] struct {
	items []T
	head  int
}

func (q *queue[T]) push(v T) { q.items = append(q.items, v) }

func (q *queue[T]) pop() T {
	v := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}
	return v
}

func (q *queue[T]) len() int { return len(q.items) - q.head }

// stack is a LIFO backed by a slice.
type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(v T) { s.items = append(s.items, v) }

func (s *stack[T]) pop() T {
	last := len(s.items) - 1
	v := s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	return v
}

func (s *stack[T]) len() int { return len(s.items) }

func newFrontier[T any](alg Algorithm) frontier[T] {
	if alg == AlgDFS {
		return &stack[T]{}
	}
	return &queue[T]{}
}
