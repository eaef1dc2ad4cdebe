package build

import (
	"errors"
	"testing"

	"github.com/vango-dev/domkit/pkg/dom"
)

func TestFindAncestorOfType(t *testing.T) {
	doc := dom.NewDocument()
	ul := doc.Body().AppendChild(doc.CreateElement("ul"))
	li := ul.AppendChild(doc.CreateElement("li"))
	div := li.AppendChild(doc.CreateElement("div"))
	span := div.AppendChild(doc.CreateElement("span"))

	tests := []struct {
		name     string
		start    *dom.Node
		typeName string
		want     *dom.Node
	}{
		{"zero hop", li, "LI", li},
		{"one hop", div, "LI", li},
		{"several hops", span, "li", li},
		{"mixed case", span, "Ul", ul},
		{"body", span, "body", doc.Body()},
		{"document root", span, "#document", doc.Root()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindAncestorOfType(tt.start, tt.typeName)
			if err != nil {
				t.Fatalf("err = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got.NodeName(), tt.want.NodeName())
			}
		})
	}
}

func TestFindAncestorOfTypeNotFound(t *testing.T) {
	doc := dom.NewDocument()
	span := doc.Body().AppendChild(doc.CreateElement("span"))
	detached := doc.CreateElement("em")

	for name, start := range map[string]*dom.Node{"attached": span, "detached": detached, "nil": nil} {
		t.Run(name, func(t *testing.T) {
			got, err := FindAncestorOfType(start, "li")
			if !errors.Is(err, ErrAncestorNotFound) {
				t.Fatalf("err = %v, want ErrAncestorNotFound", err)
			}
			if got != nil {
				t.Errorf("got %v, want nil", got)
			}
		})
	}
}

func TestFindAncestorInBuiltTree(t *testing.T) {
	b, _, _ := newBuilder(t)
	var clicked *dom.Node
	h := mustTable(t, b, Spec{
		TableData(R("a", "<button>go</button>")),
	})
	button := h.Body.Rows()[0].Children()[0].FirstChild()
	button.AddEventListener("click", func(e *dom.Event) {
		row, err := FindAncestorOfType(e.Target, "tr")
		if err != nil {
			t.Fatal(err)
		}
		clicked = row
	})

	button.DispatchEvent(&dom.Event{Type: "click"})
	if clicked != h.Body.Rows()[0] {
		t.Error("listener should find the enclosing row")
	}
}
