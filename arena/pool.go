package arena

// DefaultPoolCapacity is the number of elements in each chunk appended to a
// [Pool] that was created with a non-positive capacity.
const DefaultPoolCapacity = 256

// minAppendCap is the capacity of the first run taken by [Pool.Append].
const minAppendCap = 16

// Pool is a typed bump allocator for values that hold Go pointers.
//
// It follows the same discipline as [Arena]: values are carved from a chain
// of fixed-size chunks, never move, and are released only in bulk by
// [Pool.Reset] or [Pool.Free]. Unlike [Arena], the chunks are typed slices, so
// pointers stored in pooled values remain visible to the garbage collector.
type Pool[T any] struct {
	chunks   [][]T
	used     []int
	cur      int
	capacity int
}

// NewPool returns an empty pool whose chunks hold capacity elements.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 1 {
		capacity = DefaultPoolCapacity
	}

	return &Pool[T]{capacity: capacity}
}

// New returns a pointer to a zeroed element.
func (p *Pool[T]) New() *T {
	return &p.Make(1)[0]
}

// Make returns a contiguous run of n zeroed elements with capacity n.
func (p *Pool[T]) Make(n int) []T {
	if n <= 0 {
		return nil
	}

	capacity := p.capacity
	if capacity < 1 {
		capacity = DefaultPoolCapacity
	}

	for ; p.cur < len(p.chunks); p.cur++ {
		chunk, used := p.chunks[p.cur], p.used[p.cur]
		if used+n <= len(chunk) {
			p.used[p.cur] = used + n
			s := chunk[used : used+n : used+n]
			clear(s)

			return s
		}
	}

	p.chunks = append(p.chunks, make([]T, max(capacity, n)))
	p.used = append(p.used, n)
	p.cur = len(p.chunks) - 1

	return p.chunks[p.cur][:n:n]
}

// Append appends v to s. When s has no spare capacity, a fresh run of twice
// the capacity (at least 16) is taken from the pool and the contents of s are
// copied into it. The run previously backing s is abandoned until the pool is
// reset or freed.
func (p *Pool[T]) Append(s []T, v T) []T {
	if len(s) < cap(s) {
		return append(s, v)
	}

	grown := p.Make(max(minAppendCap, 2*cap(s)))
	n := copy(grown, s)
	grown = grown[:n]

	return append(grown, v)
}

// Reset rewinds every chunk without releasing its memory.
// Elements obtained before Reset must not be used afterward.
func (p *Pool[T]) Reset() {
	for i := range p.used {
		p.used[i] = 0
	}

	p.cur = 0
}

// Free releases every chunk.
func (p *Pool[T]) Free() {
	p.chunks = nil
	p.used = nil
	p.cur = 0
}

// Len returns the number of elements handed out since the last reset.
func (p *Pool[T]) Len() int {
	n := 0
	for _, u := range p.used {
		n += u
	}

	return n
}

// Regions returns the number of chunks held by the pool.
func (p *Pool[T]) Regions() int { return len(p.chunks) }
