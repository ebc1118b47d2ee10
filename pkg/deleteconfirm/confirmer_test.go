package deleteconfirm

import (
	"context"
	"net/url"
	"testing"

	"github.com/shunichi-ikebuchi/finance-page/pkg/page"
)

type fakeWindow struct {
	answer    bool
	questions []string
	alerts    int
}

func (w *fakeWindow) Alert(string) { w.alerts++ }

func (w *fakeWindow) Confirm(message string) bool {
	w.questions = append(w.questions, message)
	return w.answer
}

type recordingNavigator struct {
	visited []string
}

func (n *recordingNavigator) Navigate(_ context.Context, href string) error {
	n.visited = append(n.visited, href)
	return nil
}

func (n *recordingNavigator) SubmitForm(context.Context, string, string, url.Values) error {
	return nil
}

func TestConfirmerOnClick(t *testing.T) {
	tests := []struct {
		name          string
		answer        bool
		wantPrevented bool
		wantVisited   int
	}{
		{"declined", false, true, 0},
		{"accepted", true, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := &fakeWindow{answer: tt.answer}
			nav := &recordingNavigator{}
			doc := page.New(nav)
			New(window, nil).Attach(doc)

			link := &page.Element{Tag: "a", Href: "/delete/5", Classes: []string{page.DeleteTransactionClass}}
			doc.Add(link)

			ev, err := doc.Click(context.Background(), link)
			if err != nil {
				t.Fatalf("Click() error = %v", err)
			}

			if ev.DefaultPrevented() != tt.wantPrevented {
				t.Errorf("DefaultPrevented() = %v, expected %v", ev.DefaultPrevented(), tt.wantPrevented)
			}
			if len(window.questions) != 1 || window.questions[0] != ConfirmMessage {
				t.Errorf("questions = %v, expected one %q", window.questions, ConfirmMessage)
			}
			if window.alerts != 0 {
				t.Errorf("got %d alerts, expected none", window.alerts)
			}
			if len(nav.visited) != tt.wantVisited {
				t.Errorf("visited %v, expected %d navigations", nav.visited, tt.wantVisited)
			}
		})
	}
}

func TestConfirmerIgnoresOtherLinks(t *testing.T) {
	window := &fakeWindow{}
	nav := &recordingNavigator{}
	doc := page.New(nav)
	New(window, nil).Attach(doc)

	link := &page.Element{Tag: "a", Href: "/edit/5"}
	doc.Add(link)

	ev, err := doc.Click(context.Background(), link)
	if err != nil {
		t.Fatalf("Click() error = %v", err)
	}
	if ev.DefaultPrevented() {
		t.Error("edit link click was prevented")
	}
	if len(window.questions) != 0 {
		t.Errorf("asked %v for a non-delete link", window.questions)
	}
	if len(nav.visited) != 1 {
		t.Errorf("visited %v, expected [/edit/5]", nav.visited)
	}
}
