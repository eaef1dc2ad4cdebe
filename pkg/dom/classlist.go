package dom

import "strings"

// ClassList is the live class token set of an element.
type ClassList struct {
	owner  *Node
	tokens []string
}

// Add adds each token not already present. Empty tokens are ignored.
func (c *ClassList) Add(tokens ...string) {
	for _, t := range tokens {
		if t == "" || c.Contains(t) {
			continue
		}
		c.owner.touchAttr("class")
		c.tokens = append(c.tokens, t)
	}
}

// Remove removes each token if present.
func (c *ClassList) Remove(tokens ...string) {
	for _, t := range tokens {
		for i, have := range c.tokens {
			if have == t {
				c.tokens = append(c.tokens[:i], c.tokens[i+1:]...)
				break
			}
		}
	}
}

// Contains reports whether token is present.
func (c *ClassList) Contains(token string) bool {
	for _, have := range c.tokens {
		if have == token {
			return true
		}
	}
	return false
}

// Toggle removes token when present and adds it otherwise. It reports
// whether the token is present afterwards.
func (c *ClassList) Toggle(token string) bool {
	if c.Contains(token) {
		c.Remove(token)
		return false
	}
	c.Add(token)
	return true
}

// Tokens returns a copy of the tokens in order.
func (c *ClassList) Tokens() []string {
	return append([]string(nil), c.tokens...)
}

// Len returns the number of tokens.
func (c *ClassList) Len() int { return len(c.tokens) }

// String joins the tokens with single spaces.
func (c *ClassList) String() string {
	return strings.Join(c.tokens, " ")
}

func (c *ClassList) reset(tokens []string) {
	c.tokens = nil
	for _, t := range tokens {
		if !c.Contains(t) {
			c.tokens = append(c.tokens, t)
		}
	}
}
