// Package dom provides the in-memory presentation surface that domkit builds
// into.
//
// A Document owns a tree of Nodes rooted at a #document node with the usual
// html, head and body elements. Nodes support the mutations a declarative
// builder needs: attribute set and removal, an ordered live style map, a
// class list, event listeners, id lookup, parent traversal and raw markup
// assignment. Markup assigned through SetInnerHTML is parsed with
// golang.org/x/net/html in the context of the receiving element, so the
// resulting children are real nodes.
//
// The tree is not safe for concurrent mutation. Callers that share a
// Document between goroutines must serialize access themselves.
package dom
