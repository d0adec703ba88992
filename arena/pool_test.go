package arena

import "testing"

type node struct {
	name string
	next *node
}

func TestPool_NewReturnsStablePointers(t *testing.T) {
	p := NewPool[node](4)

	var nodes []*node

	for i := range 10 {
		n := p.New()
		n.name = string(rune('a' + i))
		nodes = append(nodes, n)
	}

	if p.Regions() != 3 {
		t.Errorf("expected 3 chunks, got %d", p.Regions())
	}

	for i, n := range nodes {
		if want := string(rune('a' + i)); n.name != want {
			t.Errorf("node %d: expected %q, got %q", i, want, n.name)
		}
	}
}

func TestPool_AppendGrowsByFreshRun(t *testing.T) {
	p := NewPool[int](64)

	var s []int

	first := p.Append(s, 0)
	if cap(first) != minAppendCap {
		t.Fatalf("expected first run of %d, got %d", minAppendCap, cap(first))
	}

	s = first
	for i := 1; i < 40; i++ {
		s = p.Append(s, i)
	}

	for i, v := range s {
		if v != i {
			t.Fatalf("element %d: expected %d, got %d", i, i, v)
		}
	}

	// The abandoned first run still holds its original value.
	if first[0] != 0 {
		t.Errorf("abandoned run was modified")
	}

	if p.Len() < 16+32+64 {
		t.Errorf("expected abandoned runs to stay allocated, got %d elements", p.Len())
	}
}

func TestPool_ResetAndFree(t *testing.T) {
	p := NewPool[node](2)

	a := p.New()
	a.name = "a"
	p.New()
	p.New()

	chunks := p.Regions()
	p.Reset()

	if p.Len() != 0 {
		t.Errorf("expected 0 elements after reset, got %d", p.Len())
	}

	b := p.New()
	if b.name != "" || b.next != nil {
		t.Error("expected zeroed element after reset")
	}

	if p.Regions() != chunks {
		t.Errorf("expected reset to keep %d chunks, got %d", chunks, p.Regions())
	}

	p.Free()

	if p.Regions() != 0 {
		t.Errorf("expected no chunks after free, got %d", p.Regions())
	}
}

func TestPool_ZeroValue(t *testing.T) {
	var p Pool[node]

	if n := p.New(); n == nil {
		t.Fatal("expected zero-value pool to allocate")
	}

	if got := p.Make(0); got != nil {
		t.Errorf("expected nil run for n=0, got %v", got)
	}
}
