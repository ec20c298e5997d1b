package events

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub()
	_, ch, cancel := hub.Subscribe()
	defer cancel()

	models := []string{"m1"}
	hub.Broadcast(&Event{Kind: SelectionChanged, Session: "a", Models: models})
	models[0] = "changed"

	event := <-ch
	require.Equal(t, SelectionChanged, event.Kind)
	require.Equal(t, "a", event.Session)
	require.Equal(t, []string{"m1"}, event.Models)
}

func TestHub_Cancel(t *testing.T) {
	hub := NewHub()
	_, ch, cancel := hub.Subscribe()
	require.Equal(t, 1, hub.Subscribers())

	cancel()
	require.Equal(t, 0, hub.Subscribers())
	_, ok := <-ch
	require.False(t, ok)

	// A second cancel is harmless
	cancel()
}

func TestHub_SlowSubscriberKeepsLatest(t *testing.T) {
	hub := NewHub()
	_, ch, cancel := hub.Subscribe()
	defer cancel()

	for i := 0; i < 100; i++ {
		hub.Broadcast(&Event{Kind: CategoryToggled, Category: strconv.Itoa(i)})
	}
	hub.Broadcast(&Event{Kind: SelectionChanged, Models: []string{"m1"}})
	require.Len(t, ch, cap(ch))

	var last *Event
	for len(ch) > 0 {
		last = <-ch
	}
	require.Equal(t, SelectionChanged, last.Kind)
	require.Equal(t, []string{"m1"}, last.Models)
}
