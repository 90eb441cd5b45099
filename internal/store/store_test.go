package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewport struct {
	Zoom float64
	Tags []string
}

func TestSetStateNotifiesInOrder(t *testing.T) {
	s := New(1)

	var calls []string
	s.Subscribe(func() { calls = append(calls, "first") })
	s.Subscribe(func() { calls = append(calls, "second") })

	s.SetState(2)

	assert.Equal(t, 2, s.GetState())
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestSetStateEqualIsNoop(t *testing.T) {
	s := New(viewport{Zoom: 1, Tags: []string{"a"}})

	notified := 0
	s.Subscribe(func() { notified++ })

	s.SetState(viewport{Zoom: 1, Tags: []string{"a"}})
	s.Update(func(prev viewport) viewport { return prev })

	assert.Zero(t, notified)

	s.Update(func(prev viewport) viewport {
		prev.Zoom = 2
		return prev
	})
	assert.Equal(t, 1, notified)
	assert.Equal(t, 2.0, s.GetState().Zoom)
}

func TestWithEqual(t *testing.T) {
	s := New(1, WithEqual(func(a, b int) bool { return false }))

	notified := 0
	s.Subscribe(func() { notified++ })
	s.SetState(1)

	assert.Equal(t, 1, notified)
}

func TestUnsubscribe(t *testing.T) {
	s := New("a")

	notified := 0
	unsubscribe := s.Subscribe(func() { notified++ })
	require.Equal(t, 1, s.Len())

	unsubscribe()
	unsubscribe()
	s.SetState("b")

	assert.Zero(t, notified)
	assert.Zero(t, s.Len())
}

func TestReentrantSetStateIsBatched(t *testing.T) {
	s := New(0)

	var seen []int
	s.Subscribe(func() {
		if s.GetState() == 1 {
			s.SetState(2)
		}
	})
	s.Subscribe(func() { seen = append(seen, s.GetState()) })

	s.SetState(1)

	assert.Equal(t, 2, s.GetState())
	// The nested write lands before the second listener runs, and a second
	// round reports it again rather than interleaving.
	assert.Equal(t, []int{2, 2}, seen)
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	s := New(0)

	calls := 0
	var unsubscribeSecond func()
	s.Subscribe(func() {
		if unsubscribeSecond != nil {
			unsubscribeSecond()
		}
	})
	unsubscribeSecond = s.Subscribe(func() { calls++ })

	s.SetState(1)
	s.SetState(2)

	// Still called in the round that removed it, never afterwards.
	assert.Equal(t, 1, calls)
}

func TestUpdateMayReadStore(t *testing.T) {
	s := New(10)
	s.Update(func(prev int) int { return prev + s.GetState() })
	assert.Equal(t, 20, s.GetState())
}
