package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyRegistry(t *testing.T) {
	for _, name := range PolicyNames {
		assert.True(t, IsValidPolicy(name), name)
		p := NewPolicy(name, 100)
		assert.Equal(t, name, p.Name())
	}
	assert.False(t, IsValidPolicy("lottery"))
	assert.Panics(t, func() { NewPolicy("lottery", 100) })
}

func TestFCFS_HeadOfLineOrder(t *testing.T) {
	f := NewFCFS()
	a := NewProcess(1, 0, 50, 1)
	b := NewProcess(2, 10, 5, 1)
	c := NewProcess(3, 20, 500, 1)
	f.Enqueue(a)
	f.Enqueue(b)
	f.Enqueue(c)

	assert.Equal(t, 3, f.Len())
	// Arrival order preserved regardless of burst.
	assert.Same(t, a, f.SelectNext())
	assert.Same(t, b, f.SelectNext())
	assert.Same(t, c, f.SelectNext())
	assert.Nil(t, f.SelectNext())
	assert.Equal(t, int64(0), f.TimeSlice())
	assert.False(t, f.Preempts(b, a))
}

func TestSJF_SelectsSmallestRemaining(t *testing.T) {
	s := NewSJF()
	long := NewProcess(1, 0, 500, 1)
	short := NewProcess(2, 10, 5, 1)
	mid := NewProcess(3, 20, 50, 1)
	s.Enqueue(long)
	s.Enqueue(short)
	s.Enqueue(mid)

	assert.Same(t, short, s.SelectNext())
	assert.Same(t, mid, s.SelectNext())
	assert.Same(t, long, s.SelectNext())
	assert.Nil(t, s.SelectNext())
}

func TestSJF_TieBreaksByArrivalThenID(t *testing.T) {
	s := NewSJF()
	later := NewProcess(2, 30, 50, 1)
	earlier := NewProcess(3, 10, 50, 1)
	s.Enqueue(later)
	s.Enqueue(earlier)
	assert.Same(t, earlier, s.SelectNext())
	assert.Same(t, later, s.SelectNext())

	// Same burst and arrival: lowest ID first.
	p5 := NewProcess(5, 10, 50, 1)
	p4 := NewProcess(4, 10, 50, 1)
	s.Enqueue(p5)
	s.Enqueue(p4)
	assert.Same(t, p4, s.SelectNext())
	assert.Same(t, p5, s.SelectNext())
}

func TestRoundRobin_SliceAndRequeue(t *testing.T) {
	r := NewRoundRobin(200)
	assert.Equal(t, int64(200), r.TimeSlice())

	a := NewProcess(1, 0, 500, 1)
	b := NewProcess(2, 0, 100, 1)
	r.Enqueue(a)
	r.Enqueue(b)

	assert.Same(t, a, r.SelectNext())
	// Expired process rejoins at the tail, behind b.
	r.Enqueue(a)
	assert.Same(t, b, r.SelectNext())
	assert.Same(t, a, r.SelectNext())
	assert.False(t, r.Preempts(b, a))
}

func TestRoundRobin_RejectsZeroQuantum(t *testing.T) {
	assert.Panics(t, func() { NewRoundRobin(0) })
}

func TestPreemptivePriority_SelectsHighestPriority(t *testing.T) {
	p := NewPreemptivePriority()
	low := NewProcess(1, 0, 100, 9)
	high := NewProcess(2, 10, 100, 1)
	mid := NewProcess(3, 20, 100, 5)
	p.Enqueue(low)
	p.Enqueue(high)
	p.Enqueue(mid)

	assert.Same(t, high, p.SelectNext())
	assert.Same(t, mid, p.SelectNext())
	assert.Same(t, low, p.SelectNext())
}

func TestPreemptivePriority_TieBreaksByArrival(t *testing.T) {
	p := NewPreemptivePriority()
	later := NewProcess(1, 50, 100, 3)
	earlier := NewProcess(2, 10, 100, 3)
	p.Enqueue(later)
	p.Enqueue(earlier)
	assert.Same(t, earlier, p.SelectNext())
	assert.Same(t, later, p.SelectNext())
}

func TestPreemptivePriority_PreemptsStrictlyHigherOnly(t *testing.T) {
	p := NewPreemptivePriority()
	running := NewProcess(1, 0, 100, 5)

	assert.True(t, p.Preempts(NewProcess(2, 10, 50, 1), running))
	assert.False(t, p.Preempts(NewProcess(3, 10, 50, 5), running), "equal priority must not preempt")
	assert.False(t, p.Preempts(NewProcess(4, 10, 50, 8), running))
}
