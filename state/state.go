// Package state holds the UI state shared by every chart on a page: which categories are active, which records are
// selected and the results list built from the selection.
package state

import (
	"sync"

	"github.com/StudioSol/set"

	"brushplot/events"
)

type UIState struct {
	mu      sync.Mutex
	session string
	hub     *events.EventHub

	// active is nil until the first chart renders, after which it lives as long as the page.
	active   *set.LinkedHashSetString
	selected *set.LinkedHashSetString
	results  []string
}

// New creates the state for one page. Mutations are published on hub, which may be shared between pages; session
// tells them apart.
func New(session string, hub *events.EventHub) *UIState {
	if hub == nil {
		hub = events.NewHub()
	}
	return &UIState{
		session:  session,
		hub:      hub,
		selected: set.NewLinkedHashSetString(),
	}
}

func (s *UIState) Session() string {
	return s.session
}

func (s *UIState) Hub() *events.EventHub {
	return s.hub
}

// InitCategories marks every category active, but only the first time it is called. Reports whether it did.
func (s *UIState) InitCategories(categories []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		return false
	}
	s.active = set.NewLinkedHashSetString(categories...)
	return true
}

func (s *UIState) Initialised() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != nil
}

func (s *UIState) IsActive(category string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != nil && s.active.InArray(category)
}

// Toggle flips category's membership in the active set and returns whether it is active now.
func (s *UIState) Toggle(chart, category string) bool {
	s.mu.Lock()
	if s.active == nil {
		s.active = set.NewLinkedHashSetString()
	}
	nowActive := !s.active.InArray(category)
	if nowActive {
		s.active.Add(category)
	} else {
		s.active.Remove(category)
	}
	s.mu.Unlock()

	s.hub.Broadcast(&events.Event{
		Kind:     events.CategoryToggled,
		Session:  s.session,
		Chart:    chart,
		Category: category,
		Active:   nowActive,
	})
	return nowActive
}

// ActiveCategories lists the active categories in the order they became active.
func (s *UIState) ActiveCategories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil
	}
	return drain(s.active)
}

func (s *UIState) ClearSelection(chart string) {
	s.mu.Lock()
	s.selected = set.NewLinkedHashSetString()
	s.results = nil
	s.mu.Unlock()

	s.hub.Broadcast(&events.Event{
		Kind:    events.SelectionCleared,
		Session: s.session,
		Chart:   chart,
	})
}

// SetSelection replaces the selected keys and the results list.
func (s *UIState) SetSelection(chart string, keys []string, results []string) {
	s.mu.Lock()
	s.selected = set.NewLinkedHashSetString(keys...)
	s.results = append([]string(nil), results...)
	models := drain(s.selected)
	s.mu.Unlock()

	s.hub.Broadcast(&events.Event{
		Kind:    events.SelectionChanged,
		Session: s.session,
		Chart:   chart,
		Models:  models,
	})
}

func (s *UIState) IsSelected(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected.InArray(key)
}

func (s *UIState) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return drain(s.selected)
}

func (s *UIState) Results() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.results...)
}

// Notify publishes an event that isn't tied to a state change, like a chart being rendered.
func (s *UIState) Notify(kind events.Kind, chart string) {
	s.hub.Broadcast(&events.Event{
		Kind:    kind,
		Session: s.session,
		Chart:   chart,
	})
}

func drain(s *set.LinkedHashSetString) []string {
	out := make([]string, 0, s.Length())
	for v := range s.Iter() {
		out = append(out, v)
	}
	return out
}
