package rotbuf

// Peek returns the byte at the front of the queue without removing it.
// Returns (0, false) if the buffer is empty.
func (b *Buffer) Peek() (byte, bool) {
	if b.length == 0 {
		return 0, false
	}
	return b.data[b.head], true
}

// PeekLast returns the most recently enqueued byte without removing it.
// Returns (0, false) if the buffer is empty.
func (b *Buffer) PeekLast() (byte, bool) {
	if b.length == 0 {
		return 0, false
	}
	last := b.tail - 1
	if last < 0 {
		last = len(b.data) - 1
	}
	return b.data[last], true
}

// PeekPos returns the byte at queue position pos, where position 0 is the
// front of the queue and positions count toward the back.
// Returns (0, false) when pos is outside [0, Len()).
func (b *Buffer) PeekPos(pos int) (byte, bool) {
	if pos < 0 || pos >= b.length {
		return 0, false
	}
	return b.data[(b.head+pos)%len(b.data)], true
}
