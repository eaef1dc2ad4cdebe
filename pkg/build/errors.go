package build

import (
	"errors"

	domerrors "github.com/vango-dev/domkit/internal/errors"
)

var (
	// ErrLookupFailure is matched by errors for parent ids that do not
	// resolve to an element.
	ErrLookupFailure = errors.New("build: element lookup failed")

	// ErrAncestorNotFound is matched by errors for exhausted ancestor walks.
	ErrAncestorNotFound = errors.New("build: ancestor not found")

	// ErrConflictingTableData is matched by errors for specs that carry
	// both tableData and df while strict table data is enabled.
	ErrConflictingTableData = errors.New("build: conflicting table data")

	// ErrHierarchyRequest is matched by errors for parent targets that
	// would place an element inside itself.
	ErrHierarchyRequest = errors.New("build: hierarchy request")
)

func lookupFailure(tag, id string) error {
	return domerrors.New("E101").
		WithDetailf("%s: no element with id %q", tag, id).
		WithSuggestion("Attach the parent element to the document before building its children").
		Wrap(ErrLookupFailure)
}

func ancestorNotFound(start, typeName string) error {
	return domerrors.New("E102").
		WithDetailf("no %s ancestor above %s", typeName, start).
		Wrap(ErrAncestorNotFound)
}

func conflictingTableData() error {
	return domerrors.New("E103").
		WithSuggestion("Supply either tableData or df, not both").
		Wrap(ErrConflictingTableData)
}

func hierarchyRequest(tag string) error {
	return domerrors.New("E105").
		WithDetailf("%s: parent target is the element itself or one of its descendants", tag).
		Wrap(ErrHierarchyRequest)
}
