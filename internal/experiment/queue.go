package experiment

import "github.com/ErronZrz/flow-rank/internal/core"

// Fifo 固定容量环形队列，模拟路由器的分组队列
type Fifo struct {
	buf  []core.FlowID
	head int
	size int
}

func NewFifo(capacity int) *Fifo {
	if capacity < 1 {
		panic("experiment: fifo capacity must be positive")
	}
	return &Fifo{buf: make([]core.FlowID, capacity)}
}

func (q *Fifo) Len() int   { return q.size }
func (q *Fifo) Cap() int   { return len(q.buf) }
func (q *Fifo) Full() bool { return q.size == len(q.buf) }

// Push 入队；实验驱动保证不越界
func (q *Fifo) Push(id core.FlowID) {
	if q.size == len(q.buf) {
		panic("experiment: fifo overflow")
	}
	q.buf[(q.head+q.size)%len(q.buf)] = id
	q.size++
}

// Pop 弹出最老的条目
func (q *Fifo) Pop() core.FlowID {
	if q.size == 0 {
		panic("experiment: fifo underflow")
	}
	id := q.buf[q.head]
	q.buf[q.head] = ""
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return id
}
