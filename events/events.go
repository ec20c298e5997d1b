package events

import "sync"

type Kind string

const (
	CategoryToggled  Kind = "category-toggled"
	SelectionCleared Kind = "selection-cleared"
	SelectionChanged Kind = "selection-changed"
	ChartRendered    Kind = "chart-rendered"
)

type Event struct {
	Kind Kind
	// Session identifies the page the change happened on, empty when there is only one.
	Session string
	// Chart is the key of the chart that triggered the change, if any.
	Chart    string
	Category string
	// Active is the category's state after a toggle.
	Active bool
	// Models holds the selected record keys after a selection change.
	Models []string
}

type EventHub struct {
	mu   sync.Mutex
	subs map[int]chan *Event
	next int
}

func NewHub() *EventHub {
	return &EventHub{subs: map[int]chan *Event{}}
}

// Subscribe registers a listener. The returned cancel func unregisters it and closes the channel.
func (h *EventHub) Subscribe() (int, <-chan *Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan *Event, 16)
	h.subs[id] = ch
	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			close(c)
			delete(h.subs, id)
		}
	}
	return id, ch, cancel
}

// Broadcast hands a copy of event to every subscriber. A subscriber with a full buffer loses its oldest event
// instead, so the latest change always gets through.
func (h *EventHub) Broadcast(event *Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		e := h.copy(event)
		for {
			select {
			case ch <- e:
			default:
				select {
				case <-ch:
				default:
				}
				continue
			}
			break
		}
	}
}

func (h *EventHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *EventHub) copy(e *Event) *Event {
	c := *e
	c.Models = append([]string(nil), e.Models...)
	return &c
}
