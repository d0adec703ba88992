package arena

import (
	"bytes"
	"strings"
	"testing"
	"unsafe"
)

func TestArena_ZeroValueAllocates(t *testing.T) {
	var a Arena

	b := a.Alloc(10)
	if len(b) != 10 {
		t.Fatalf("expected 10 bytes, got %d", len(b))
	}

	if a.Regions() != 1 {
		t.Errorf("expected 1 region, got %d", a.Regions())
	}

	if a.Cap() != DefaultCapacity {
		t.Errorf("expected capacity %d, got %d", DefaultCapacity, a.Cap())
	}
}

func TestArena_AllocationsSpanRegions(t *testing.T) {
	a := New(WithCapacity(64))

	var blocks [][]byte

	for i := range 10 {
		b := a.Alloc(24)
		for j := range b {
			b[j] = byte(i)
		}

		blocks = append(blocks, b)
	}

	if a.Regions() < 2 {
		t.Fatalf("expected allocations to span regions, got %d", a.Regions())
	}

	for i, b := range blocks {
		for j, c := range b {
			if c != byte(i) {
				t.Fatalf("block %d byte %d: expected %d, got %d", i, j, i, c)
			}
		}
	}

	if a.Len() != 10*24 {
		t.Errorf("expected %d bytes allocated, got %d", 10*24, a.Len())
	}
}

func TestArena_OversizedAllocationGetsOwnRegion(t *testing.T) {
	a := New(WithCapacity(16))
	a.Alloc(4)

	b := a.Alloc(100)
	if len(b) != 100 {
		t.Fatalf("expected 100 bytes, got %d", len(b))
	}

	if a.Regions() != 2 {
		t.Errorf("expected 2 regions, got %d", a.Regions())
	}

	if a.Cap() != 16+100 {
		t.Errorf("expected capacity %d, got %d", 16+100, a.Cap())
	}
}

func TestArena_AllocAligned(t *testing.T) {
	a := New(WithCapacity(256))
	a.Alloc(3)

	var blocks [][]byte

	for i, align := range []int{1, 2, 4, 8, 16, 64, 128, 512} {
		b := a.AllocAligned(5, align)
		if len(b) != 5 {
			t.Fatalf("alignment %d: expected 5 bytes, got %d", align, len(b))
		}

		if addr := uintptr(unsafe.Pointer(&b[0])); addr%uintptr(align) != 0 {
			t.Errorf("alignment %d: block address %#x is not aligned", align, addr)
		}

		copy(b, bytes.Repeat([]byte{byte(i + 1)}, len(b)))
		blocks = append(blocks, b)
	}

	for i, b := range blocks {
		if !bytes.Equal(b, bytes.Repeat([]byte{byte(i + 1)}, len(b))) {
			t.Errorf("block %d overwritten: %v", i, b)
		}
	}
}

func TestArena_AllocAlignedRejectsBadAlignment(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for alignment 3")
		}
	}()

	var a Arena
	a.AllocAligned(8, 3)
}

func TestArena_ReallocCopiesIntoFreshBlock(t *testing.T) {
	var a Arena

	old := a.Alloc(4)
	copy(old, "abcd")

	grown := a.Realloc(old, 8)
	if string(grown[:4]) != "abcd" {
		t.Errorf("expected copied prefix, got %q", grown[:4])
	}

	grown[0] = 'z'
	if old[0] != 'a' {
		t.Error("realloc must not alias the old block")
	}

	if a.Len() != 12 {
		t.Errorf("old block must stay allocated: expected 12 bytes, got %d", a.Len())
	}

	shrunk := a.Realloc(grown, 2)
	if string(shrunk) != "zb" {
		t.Errorf("expected truncated copy, got %q", shrunk)
	}
}

func TestArena_ResetReusesRegions(t *testing.T) {
	a := New(WithCapacity(32))

	for range 5 {
		a.Alloc(20)
	}

	regions, capacity := a.Regions(), a.Cap()

	a.Reset()

	if a.Len() != 0 {
		t.Errorf("expected 0 bytes after reset, got %d", a.Len())
	}

	for range 5 {
		b := a.Alloc(20)
		for _, c := range b {
			if c != 0 {
				t.Fatal("reused block is not zeroed")
			}
		}
	}

	if a.Regions() != regions || a.Cap() != capacity {
		t.Errorf(
			"expected reset arena to reuse %d regions (%d bytes), got %d (%d bytes)",
			regions, capacity, a.Regions(), a.Cap(),
		)
	}
}

func TestArena_FreeEmptiesChain(t *testing.T) {
	var a Arena
	a.Alloc(DefaultCapacity)
	a.Alloc(1)
	a.Free()

	if a.Regions() != 0 || a.Cap() != 0 || a.Len() != 0 {
		t.Errorf("expected empty arena, got %d regions", a.Regions())
	}

	if b := a.Alloc(5); len(b) != 5 {
		t.Error("freed arena must remain usable")
	}
}

func TestArena_Clone(t *testing.T) {
	var a Arena

	src := []byte("hello")
	b := a.Clone(string(src))
	src[0] = 'j'

	if string(b) != "hello" {
		t.Errorf("expected independent copy, got %q", b)
	}
}

func TestArena_Dump(t *testing.T) {
	a := New(WithCapacity(8))
	a.Alloc(8)
	a.Alloc(3)

	var buf bytes.Buffer
	if err := a.Dump(&buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}

	if lines[1] != "region 1: 3/8 bytes" {
		t.Errorf("unexpected dump line %q", lines[1])
	}
}
