package rotbuf

import "fmt"

// Buffer is a fixed-capacity FIFO byte queue over a single contiguous
// allocation. Enqueue and dequeue rotate the read/write cursors modulo
// capacity instead of shifting stored bytes, so both operations are
// constant-time and allocation-free.
//
// A Buffer is single-owner: it must not be mutated concurrently from
// multiple goroutines.
type Buffer struct {
	data   []byte // fixed storage, len(data) == capacity
	head   int    // next slot to dequeue
	tail   int    // next slot to enqueue
	length int    // occupied slots; disambiguates head == tail (empty vs full)
}

// New creates a rotating buffer holding at most 'capacity' bytes.
// Storage is allocated here once and is never resized.
// Capacity must be >= 1, otherwise New panics.
func New(capacity int) *Buffer {
	if capacity < 1 {
		panic("capacity must be >= 1")
	}
	return &Buffer{data: make([]byte, capacity)}
}

// Enqueue appends v at the back of the queue.
// Returns an *AtCapacityError carrying v if the buffer is full; a rejected
// enqueue leaves the buffer untouched and the caller reclaims the byte from
// the error.
func (b *Buffer) Enqueue(v byte) error {
	if b.length == len(b.data) {
		return &AtCapacityError{value: v}
	}
	b.data[b.tail] = v
	b.tail = (b.tail + 1) % len(b.data)
	b.length++
	return nil
}

// Dequeue removes and returns the byte at the front of the queue.
// Returns (0, false) if the buffer is empty.
// The vacated slot keeps its stale byte; the cursors gate all access to it.
func (b *Buffer) Dequeue() (byte, bool) {
	if b.length == 0 {
		return 0, false
	}
	v := b.data[b.head]
	b.head = (b.head + 1) % len(b.data)
	b.length--
	return v, true
}

// Len returns the number of bytes currently queued.
func (b *Buffer) Len() int {
	return b.length
}

// Capacity returns the fixed buffer capacity.
func (b *Buffer) Capacity() int {
	return len(b.data)
}

// IsEmpty reports whether no bytes are queued.
func (b *Buffer) IsEmpty() bool {
	return b.length == 0
}

// IsFull reports whether the next Enqueue would be rejected.
func (b *Buffer) IsFull() bool {
	return b.length == len(b.data)
}

// AtCapacityError is returned by Enqueue when the buffer is full. It carries
// the byte that could not be stored so the caller can reclaim it instead of
// losing it.
type AtCapacityError struct {
	value byte
}

// Reclaim returns the byte rejected by Enqueue. It is a pure accessor; the
// buffer was never mutated by the failed attempt.
func (e *AtCapacityError) Reclaim() byte {
	return e.value
}

func (e *AtCapacityError) Error() string {
	return fmt.Sprintf("rotating buffer at capacity, rejected input: %d", e.value)
}
