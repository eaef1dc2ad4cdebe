package dom

import (
	"math/rand/v2"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Show sets display to block.
func Show(n *Node) {
	n.Style().Set("display", "block")
}

// Hide sets display to none.
func Hide(n *Node) {
	n.Style().Set("display", "none")
}

// ShowID shows the element with the given id. It reports whether the
// element exists.
func (d *Document) ShowID(id string) bool {
	n := d.GetElementByID(id)
	if n == nil {
		return false
	}
	Show(n)
	return true
}

// HideID hides the element with the given id. It reports whether the
// element exists.
func (d *Document) HideID(id string) bool {
	n := d.GetElementByID(id)
	if n == nil {
		return false
	}
	Hide(n)
	return true
}

// SwitchClass swaps c1 for c2 (or c2 for c1) when exactly one of them is
// present. Otherwise it does nothing.
func SwitchClass(n *Node, c1, c2 string) {
	cl := n.ClassList()
	has1, has2 := cl.Contains(c1), cl.Contains(c2)
	switch {
	case has1 && !has2:
		cl.Remove(c1)
		cl.Add(c2)
	case has2 && !has1:
		cl.Remove(c2)
		cl.Add(c1)
	}
}

// SwitchInnerHTML replaces the first occurrence of m1 with m2 (or m2 with
// m1) in the serialized children when exactly one of them occurs.
func SwitchInnerHTML(n *Node, m1, m2 string) {
	inner := n.InnerHTML()
	has1, has2 := strings.Contains(inner, m1), strings.Contains(inner, m2)
	switch {
	case has1 && !has2:
		n.SetInnerHTML(strings.Replace(inner, m1, m2, 1))
	case has2 && !has1:
		n.SetInnerHTML(strings.Replace(inner, m2, m1, 1))
	}
}

// SetSelectOption marks the first option whose text equals text as
// selected and clears the mark on the others. It reports whether a match
// was found.
func SetSelectOption(sel *Node, text string) bool {
	options := sel.ElementsByTagName("option")
	match := -1
	for i, opt := range options {
		if opt.TextContent() == text {
			match = i
			break
		}
	}
	if match < 0 {
		return false
	}
	for i, opt := range options {
		if i == match {
			opt.SetAttribute("selected", "selected")
		} else {
			opt.RemoveAttribute("selected")
		}
	}
	return true
}

// AddSelectOptions appends one option per value, using the value as both
// the option value and its markup.
func AddSelectOptions(sel *Node, values ...string) {
	for _, v := range values {
		opt := sel.doc.CreateElement("option")
		opt.SetAttribute("value", v)
		opt.SetInnerHTML(v)
		sel.AppendChild(opt)
	}
}

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// MakeID returns a random string of n ASCII letters, suitable as an
// element id.
func MakeID(n int) string {
	if n <= 0 {
		n = 12
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b)
}

// URLParams returns the query parameters of rawURL. When a key repeats,
// the last value wins.
func URLParams(rawURL string) (map[string]string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	params := make(map[string]string)
	for key, values := range u.Query() {
		params[key] = values[len(values)-1]
	}
	return params, nil
}

// AddParamToURL returns rawURL with key=val appended to its query string.
func AddParamToURL(rawURL, key, val string) string {
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + url.QueryEscape(key) + "=" + url.QueryEscape(val)
}

// CapitalizeFirst upper-cases the first character of s and leaves the rest
// untouched.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}
