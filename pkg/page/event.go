package page

import (
	"context"
	"slices"
)

// EventType identifies a dispatched event.
type EventType string

const (
	EventReady  EventType = "DOMContentLoaded"
	EventSubmit EventType = "submit"
	EventClick  EventType = "click"
)

// Event is a dispatched event. Listeners cancel the default action with PreventDefault.
type Event struct {
	Type   EventType
	Target *Element

	defaultPrevented bool
}

// PreventDefault cancels the event's default action.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Listener handles a dispatched event.
type Listener func(ctx context.Context, ev *Event)

// Element is a node of the page.
type Element struct {
	ID      string
	Name    string
	Tag     string
	Href    string
	Text    string
	Value   string
	Classes []string
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.Classes, class)
}

// Selector matches event targets by id or by class.
type Selector struct {
	id    string
	class string
}

// ByID selects the element with the given id.
func ByID(id string) Selector {
	return Selector{id: id}
}

// ByClass selects every element carrying class.
func ByClass(class string) Selector {
	return Selector{class: class}
}

// Matches reports whether el is selected.
func (s Selector) Matches(el *Element) bool {
	if el == nil {
		return false
	}
	if s.id != "" {
		return el.ID == s.id
	}
	if s.class != "" {
		return el.HasClass(s.class)
	}
	return false
}

func (s Selector) String() string {
	if s.id != "" {
		return "#" + s.id
	}
	return "." + s.class
}
