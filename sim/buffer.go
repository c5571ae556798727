package sim

// SeekBuffer is the bounded staging buffer between the raw request stream
// and window processing: a fixed-capacity ring with read/write cursors.
// Fill appends from the pending stream up to capacity; CutWindow removes
// positions from the head in FIFO order. The backing array never grows
// after construction, which bounds the working set of a run.
type SeekBuffer struct {
	data  []int
	read  int // index of the oldest buffered position
	count int // number of buffered positions
}

// NewSeekBuffer returns an empty buffer holding at most capacity
// positions. Panics if capacity is not positive.
func NewSeekBuffer(capacity int) *SeekBuffer {
	if capacity <= 0 {
		panic("seek buffer capacity must be positive")
	}
	return &SeekBuffer{data: make([]int, capacity)}
}

// Cap returns the fixed capacity.
func (b *SeekBuffer) Cap() int { return len(b.data) }

// Len returns the number of buffered positions.
func (b *SeekBuffer) Len() int { return b.count }

// Fill copies positions from src into the buffer until the buffer is full
// or src is exhausted, returning how many were consumed.
func (b *SeekBuffer) Fill(src []int) int {
	n := 0
	for n < len(src) && b.count < len(b.data) {
		b.data[(b.read+b.count)%len(b.data)] = src[n]
		b.count++
		n++
	}
	return n
}

// CutWindow removes up to n positions from the buffer head and appends
// them to dst in arrival order, returning the extended slice. The caller
// owns the returned window; the buffer keeps no view into it.
func (b *SeekBuffer) CutWindow(dst []int, n int) []int {
	if n > b.count {
		n = b.count
	}
	for i := 0; i < n; i++ {
		dst = append(dst, b.data[b.read])
		b.read = (b.read + 1) % len(b.data)
		b.count--
	}
	return dst
}
