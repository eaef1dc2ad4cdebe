package build

import (
	"strings"

	"github.com/vango-dev/domkit/pkg/dom"
)

// FindAncestorOfType returns the nearest node whose NodeName equals
// typeName ignoring case, starting with n itself and following parent
// references. When the root is passed without a match it returns an error
// matching ErrAncestorNotFound.
func FindAncestorOfType(n *dom.Node, typeName string) (*dom.Node, error) {
	for cur := n; cur != nil; cur = cur.ParentNode() {
		if strings.EqualFold(cur.NodeName(), typeName) {
			return cur, nil
		}
	}
	start := "<nil>"
	if n != nil {
		start = n.NodeName()
	}
	return nil, ancestorNotFound(start, strings.ToUpper(typeName))
}
