// Package page provides an in-memory model of the transactions page: its
// elements, the transaction form, the results table body and event dispatch.
//
// Listeners are attached explicitly by the behaviours that need them; the
// document's default actions (form submission and link navigation) are
// carried out by a Navigator once no listener has prevented them.
package page

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
)

// Element identifiers and marker classes the page is built with.
const (
	TransactionFormID      = "transaction-form"
	DescriptionFieldID     = "description"
	AmountFieldID          = "amount"
	CategoryFieldID        = "category"
	TransactionsTableBody  = "transactions-table-body"
	DeleteTransactionClass = "delete-transaction"
)

var (
	// ErrUnknownForm is returned when submitting a form the document does not hold.
	ErrUnknownForm = errors.New("unknown form")

	// ErrUnknownElement is returned when an element id is not in the document.
	ErrUnknownElement = errors.New("unknown element")
)

// Window is the blocking user-interaction surface of the page.
type Window interface {
	// Alert presents a blocking notification.
	Alert(message string)
	// Confirm asks a yes/no question and reports whether the user accepted.
	Confirm(message string) bool
}

// Navigator performs the default actions of links and forms.
type Navigator interface {
	Navigate(ctx context.Context, href string) error
	SubmitForm(ctx context.Context, method, action string, values url.Values) error
}

// Form is an HTML form with its input fields.
type Form struct {
	ID     string
	Method string
	Action string
	Fields []*Element
}

type registration struct {
	selector  Selector
	eventType EventType
	listener  Listener
}

// Document holds the page's elements and dispatches events to listeners.
type Document struct {
	mu         sync.Mutex
	nav        Navigator
	elements   map[string]*Element
	links      []*Element
	forms      map[string]*Form
	bodies     map[string]*TableBody
	listeners  []registration
	onReady    []Listener
	readyFired bool
}

// New creates an empty Document whose default actions go through nav.
// A nil Navigator makes default actions no-ops.
func New(nav Navigator) *Document {
	return &Document{
		nav:      nav,
		elements: make(map[string]*Element),
		forms:    make(map[string]*Form),
		bodies:   make(map[string]*TableBody),
	}
}

// NewTransactionsPage builds the document the finance tracker serves for its
// transactions page: the transaction form posting to action and the empty
// transactions table body. Field names are the ones the server reads.
func NewTransactionsPage(nav Navigator, action string, fieldNames map[string]string) *Document {
	doc := New(nav)

	fields := make([]*Element, 0, 3)
	for _, id := range []string{DescriptionFieldID, AmountFieldID, CategoryFieldID} {
		name := fieldNames[id]
		if name == "" {
			name = id
		}
		fields = append(fields, &Element{ID: id, Name: name, Tag: "input"})
	}

	doc.AddForm(&Form{
		ID:     TransactionFormID,
		Method: "POST",
		Action: action,
		Fields: fields,
	})
	doc.AddTableBody(TransactionsTableBody)

	return doc
}

// Add registers a standalone element. Elements with an href are links.
func (d *Document) Add(el *Element) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if el.ID != "" {
		d.elements[el.ID] = el
	}
	if el.Href != "" {
		d.links = append(d.links, el)
	}
}

// AddForm registers a form and its fields.
func (d *Document) AddForm(f *Form) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.forms[f.ID] = f
	d.elements[f.ID] = &Element{ID: f.ID, Tag: "form"}
	for _, field := range f.Fields {
		if field.ID != "" {
			d.elements[field.ID] = field
		}
	}
}

// AddTableBody creates an empty table body with the given id.
func (d *Document) AddTableBody(id string) *TableBody {
	d.mu.Lock()
	defer d.mu.Unlock()

	body := &TableBody{id: id}
	d.bodies[id] = body
	d.elements[id] = &Element{ID: id, Tag: "tbody"}
	return body
}

// Element returns the element with the given id, or nil.
func (d *Document) Element(id string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.elements[id]
}

// TableBody returns the table body with the given id, or nil.
func (d *Document) TableBody(id string) *TableBody {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bodies[id]
}

// Value returns the current value of an input element.
func (d *Document) Value(id string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[id]
	if !ok {
		return "", false
	}
	return el.Value, true
}

// SetValue sets the value of an input element.
func (d *Document) SetValue(id, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownElement, id)
	}
	el.Value = value
	return nil
}

// QueryByClass returns every link carrying class, including links inside
// rendered table rows.
func (d *Document) QueryByClass(class string) []*Element {
	var result []*Element
	for _, el := range d.allLinks() {
		if el.HasClass(class) {
			result = append(result, el)
		}
	}
	return result
}

// FindLink returns the first link pointing to href, or nil.
func (d *Document) FindLink(href string) *Element {
	for _, el := range d.allLinks() {
		if el.Href == href {
			return el
		}
	}
	return nil
}

func (d *Document) allLinks() []*Element {
	d.mu.Lock()
	links := append([]*Element(nil), d.links...)
	bodies := make([]*TableBody, 0, len(d.bodies))
	for _, body := range d.bodies {
		bodies = append(bodies, body)
	}
	d.mu.Unlock()

	for _, body := range bodies {
		links = append(links, body.Links()...)
	}
	return links
}

// On registers listener for events of eventType whose target matches selector.
// Matching happens at dispatch time, so elements added later are covered.
func (d *Document) On(selector Selector, eventType EventType, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.listeners = append(d.listeners, registration{
		selector:  selector,
		eventType: eventType,
		listener:  listener,
	})
}

// OnReady registers listener for the page-ready event.
func (d *Document) OnReady(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onReady = append(d.onReady, listener)
}

// Ready dispatches the page-ready event. It fires at most once; later calls
// return false without invoking any listener.
func (d *Document) Ready(ctx context.Context) bool {
	d.mu.Lock()
	if d.readyFired {
		d.mu.Unlock()
		return false
	}
	d.readyFired = true
	listeners := append([]Listener(nil), d.onReady...)
	d.mu.Unlock()

	ev := &Event{Type: EventReady}
	for _, l := range listeners {
		l(ctx, ev)
	}
	return true
}

// Submit dispatches a submit event on the form and, unless a listener
// prevented it, submits the form's field values through the Navigator.
func (d *Document) Submit(ctx context.Context, formID string) (*Event, error) {
	d.mu.Lock()
	form, ok := d.forms[formID]
	target := d.elements[formID]
	d.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownForm, formID)
	}

	ev := d.dispatch(ctx, EventSubmit, target)
	if ev.DefaultPrevented() || d.nav == nil {
		return ev, nil
	}

	if err := d.nav.SubmitForm(ctx, form.Method, form.Action, d.formValues(form)); err != nil {
		return ev, fmt.Errorf("failed to submit form %s: %w", formID, err)
	}
	return ev, nil
}

// Click dispatches a click event on el and, unless a listener prevented it,
// follows the element's href through the Navigator.
func (d *Document) Click(ctx context.Context, el *Element) (*Event, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: click target is nil", ErrUnknownElement)
	}

	ev := d.dispatch(ctx, EventClick, el)
	if ev.DefaultPrevented() || d.nav == nil || el.Href == "" {
		return ev, nil
	}

	if err := d.nav.Navigate(ctx, el.Href); err != nil {
		return ev, fmt.Errorf("failed to navigate to %s: %w", el.Href, err)
	}
	return ev, nil
}

func (d *Document) dispatch(ctx context.Context, eventType EventType, target *Element) *Event {
	d.mu.Lock()
	var matched []Listener
	for _, reg := range d.listeners {
		if reg.eventType == eventType && reg.selector.Matches(target) {
			matched = append(matched, reg.listener)
		}
	}
	d.mu.Unlock()

	ev := &Event{Type: eventType, Target: target}
	for _, l := range matched {
		l(ctx, ev)
	}
	return ev
}

func (d *Document) formValues(form *Form) url.Values {
	d.mu.Lock()
	defer d.mu.Unlock()

	values := url.Values{}
	for _, field := range form.Fields {
		if field.Name == "" {
			continue
		}
		values.Set(field.Name, field.Value)
	}
	return values
}
