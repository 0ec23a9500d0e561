package motion

import "testing"

func TestSegmentQueuePushPopOrder(t *testing.T) {
	var q SegmentQueue
	a := Segment{N: 3}
	b := Segment{N: 7}

	q.Push(a)
	q.Push(b)

	if got, want := q.TotalSamples(), (3+1)+(7+1); got != want {
		t.Errorf("TotalSamples() = %v, want %v", got, want)
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %v, want 2", q.Len())
	}

	first := q.Pop(3)
	if first.N != 3 {
		t.Errorf("Pop() returned N=%v, want 3 (FIFO order)", first.N)
	}
	if got, want := q.TotalSamples(), 7+1; got != want {
		t.Errorf("TotalSamples() after pop = %v, want %v", got, want)
	}

	second := q.Pop(3)
	if second.N != 7 {
		t.Errorf("Pop() returned N=%v, want 7", second.N)
	}
	if !q.Empty() {
		t.Errorf("queue should be empty after draining both segments")
	}
}

func TestSegmentQueuePopOnEmptyReturnsZeroSegment(t *testing.T) {
	var q SegmentQueue
	s := q.Pop(3)
	if s.N != 0 {
		t.Errorf("Pop() on empty queue: N = %v, want 0", s.N)
	}
	for i, v := range s.Unit {
		if v != 0 {
			t.Errorf("Pop() on empty queue: Unit[%d] = %v, want 0", i, v)
		}
	}
	if q.TotalSamples() != 0 {
		t.Errorf("TotalSamples() on empty queue = %v, want 0", q.TotalSamples())
	}
}
