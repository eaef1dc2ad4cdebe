package dom

import (
	"reflect"
	"testing"
)

func TestSetAttribute(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("input")

	el.SetAttribute("type", "text")
	el.SetAttribute("Placeholder", "Name")
	el.SetAttribute("type", "email")

	want := []Attr{{"type", "email"}, {"placeholder", "Name"}}
	if got := el.Attributes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes() = %v, want %v", got, want)
	}
	if v, ok := el.GetAttribute("PLACEHOLDER"); !ok || v != "Name" {
		t.Errorf("GetAttribute = %q, %v", v, ok)
	}
}

func TestSetAttributeRejectsInvalidNames(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"data-row", true},
		{"aria-label", true},
		{"", false},
		{"x onmouseover", false},
		{"a=b", false},
		{`a"b`, false},
		{"a'b", false},
		{"a>b", false},
		{"a/b", false},
		{"tab\tname", false},
		{"nul\x00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := NewDocument().CreateElement("div")
			err := el.SetAttribute(tt.name, "v")
			if tt.valid {
				if err != nil {
					t.Fatalf("SetAttribute() error = %v", err)
				}
				return
			}
			if err != ErrInvalidCharacter {
				t.Errorf("SetAttribute() error = %v, want ErrInvalidCharacter", err)
			}
			if len(el.Attributes()) != 0 {
				t.Errorf("Attributes() = %v, want none", el.Attributes())
			}
		})
	}
}

func TestRemoveAttribute(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("button")
	el.SetAttribute("disabled", "disabled")
	el.RemoveAttribute("disabled")

	if el.HasAttribute("disabled") {
		t.Error("attribute should be removed")
	}
	el.RemoveAttribute("missing")
}

func TestAttributesOnTextNodeIgnored(t *testing.T) {
	d := NewDocument()
	txt := d.CreateTextNode("x")
	txt.SetAttribute("id", "nope")
	if txt.HasAttribute("id") {
		t.Error("text nodes should not carry attributes")
	}
}

func TestClassAttributeIsLive(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div")
	el.SetAttribute("id", "card")
	el.ClassList().Add("mt-2", "bg-dark", "mt-2")

	if got, _ := el.GetAttribute("class"); got != "mt-2 bg-dark" {
		t.Errorf("class = %q", got)
	}

	el.SetAttribute("class", "a  b a")
	if got := el.ClassList().Tokens(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("tokens = %v", got)
	}

	want := []Attr{{"id", "card"}, {"class", "a b"}}
	if got := el.Attributes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes() = %v, want %v", got, want)
	}

	el.RemoveAttribute("class")
	if el.ClassList().Len() != 0 || el.HasAttribute("class") {
		t.Error("removing class should clear the list")
	}
}

func TestClassListToggle(t *testing.T) {
	d := NewDocument()
	cl := d.CreateElement("div").ClassList()

	if !cl.Toggle("open") || !cl.Contains("open") {
		t.Error("Toggle should add a missing token")
	}
	if cl.Toggle("open") || cl.Contains("open") {
		t.Error("Toggle should remove a present token")
	}
	cl.Add("")
	if cl.Len() != 0 {
		t.Error("empty tokens should be ignored")
	}
}

func TestStyle(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div")
	st := el.Style()

	st.Merge([]Property{{"overflow", "auto"}, {"color", "red"}})
	st.Set("overflow", "hidden")

	if got := st.String(); got != "overflow: hidden; color: red;" {
		t.Errorf("String() = %q", got)
	}
	if got, _ := el.GetAttribute("style"); got != st.String() {
		t.Errorf("style attribute = %q", got)
	}

	st.Set("color", "")
	if st.Get("color") != "" || st.Len() != 1 {
		t.Errorf("empty value should remove the property, got %v", st.Properties())
	}
}

func TestStyleAttributeParses(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div")
	el.SetAttribute("style", "display: none; ; width:10px; bogus")

	want := []Property{{"display", "none"}, {"width", "10px"}}
	if got := el.Style().Properties(); !reflect.DeepEqual(got, want) {
		t.Errorf("Properties() = %v, want %v", got, want)
	}
}
