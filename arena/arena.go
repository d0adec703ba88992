package arena

import (
	"fmt"
	"io"
	"unsafe"
)

// DefaultCapacity is the capacity of each region appended to an [Arena] that
// was not configured with [WithCapacity].
const DefaultCapacity = 8 * 1024

// Region is one fixed-capacity segment of an [Arena].
type Region struct {
	offset int
	data   []byte
	next   *Region
}

func newRegion(capacity int) *Region {
	return &Region{data: make([]byte, capacity)}
}

// Cap returns the number of bytes the region can hold.
func (r *Region) Cap() int { return len(r.data) }

// Len returns the number of bytes allocated from the region.
func (r *Region) Len() int { return r.offset }

// alignedOffset returns the first offset at or after r.offset whose address
// is a multiple of alignment. Region buffers are heap allocated and never
// move, so the address stays aligned for the life of the block.
func (r *Region) alignedOffset(alignment int) int {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(r.data))) + uintptr(r.offset)
	pad := -addr & uintptr(alignment-1)

	return r.offset + int(pad)
}

// Arena is a bump allocator over a chain of regions.
//
// Allocation takes bytes from the tail region. When the tail cannot satisfy a
// request, a new region of max(capacity, size) bytes is appended. Blocks are
// never moved and never released individually: they live until [Arena.Reset]
// or [Arena.Free].
//
// The zero value is an empty arena using [DefaultCapacity].
type Arena struct {
	head     *Region
	tail     *Region
	capacity int
}

// New returns an empty arena configured with the given options.
func New(opts ...Option) *Arena {
	return apply(&Arena{capacity: DefaultCapacity}, opts...)
}

func (a *Arena) regionCap(size int) int {
	c := a.capacity
	if c <= 0 {
		c = DefaultCapacity
	}

	return max(c, size)
}

// Alloc returns a zeroed block of size bytes.
func (a *Arena) Alloc(size int) []byte {
	return a.AllocAligned(size, 1)
}

// AllocAligned returns a zeroed block of size bytes whose address is a
// multiple of alignment. Padding skipped to reach the boundary is not reused.
//
// Alignment must be a power of two.
func (a *Arena) AllocAligned(size, alignment int) []byte {
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		panic(fmt.Sprintf("arena: alignment %d is not a power of two", alignment))
	}

	if size < 0 {
		panic(fmt.Sprintf("arena: negative allocation size %d", size))
	}

	if a.tail == nil {
		a.head = newRegion(a.regionCap(size + alignment - 1))
		a.tail = a.head
	}

	// Rewound regions are reused before a new region is appended.
	for r := a.tail; r != nil; r = r.next {
		start := r.alignedOffset(alignment)
		if start+size <= len(r.data) {
			a.tail = r
			r.offset = start + size
			b := r.data[start:r.offset:r.offset]
			clear(b)

			return b
		}
	}

	r := newRegion(a.regionCap(size + alignment - 1))

	last := a.tail
	for last.next != nil {
		last = last.next
	}

	last.next = r
	a.tail = r

	start := r.alignedOffset(alignment)
	r.offset = start + size

	return r.data[start:r.offset:r.offset]
}

// Realloc returns a fresh block of newSize bytes holding a copy of old.
// The block backing old is not reclaimed until the arena is reset or freed.
func (a *Arena) Realloc(old []byte, newSize int) []byte {
	b := a.Alloc(newSize)
	copy(b, old)

	return b
}

// Clone copies s into a new block and returns the block.
func (a *Arena) Clone(s string) []byte {
	b := a.Alloc(len(s))
	copy(b, s)

	return b
}

// Reset rewinds every region to empty without releasing its memory.
// Blocks returned before Reset must not be used afterward.
func (a *Arena) Reset() {
	for r := a.head; r != nil; r = r.next {
		r.offset = 0
	}

	a.tail = a.head
}

// Free releases every region. The arena remains usable and will allocate
// new regions on demand.
func (a *Arena) Free() {
	a.head = nil
	a.tail = nil
}

// Len returns the number of bytes allocated across all regions, including
// alignment padding.
func (a *Arena) Len() int {
	n := 0
	for r := a.head; r != nil; r = r.next {
		n += r.offset
	}

	return n
}

// Cap returns the number of bytes reserved across all regions.
func (a *Arena) Cap() int {
	n := 0
	for r := a.head; r != nil; r = r.next {
		n += len(r.data)
	}

	return n
}

// Regions returns the length of the region chain.
func (a *Arena) Regions() int {
	n := 0
	for r := a.head; r != nil; r = r.next {
		n++
	}

	return n
}

// Dump writes one line per region describing its usage.
func (a *Arena) Dump(w io.Writer) error {
	i := 0
	for r := a.head; r != nil; r = r.next {
		_, err := fmt.Fprintf(w, "region %d: %d/%d bytes\n", i, r.offset, len(r.data))
		if err != nil {
			return err
		}

		i++
	}

	return nil
}
