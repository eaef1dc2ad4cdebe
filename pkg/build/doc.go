// Package build turns declarative element specs into dom trees.
//
// A Spec is an ordered list of entries, one per configuration key. The
// builder creates one element for the requested tag, applies each entry in
// order, recursively builds children and, for table tags, always attaches a
// thead and a tbody before populating them from record-list or columnar
// table data.
//
//	b := build.New(doc)
//	res, err := b.Build("div", build.Spec{
//	    build.ID("card"),
//	    build.Class("mt-2 bg-dark"),
//	    build.StyleProps("overflow", "auto"),
//	    build.ParentID("main"),
//	    build.Children(
//	        build.Child("h1", build.Spec{build.InnerHTML("Title")}),
//	    ),
//	})
//
// Build returns a Result: a NodeResult for ordinary tags and TableHandles
// for tables. BuildTable and BuildElement give statically typed entry
// points when the caller already knows which shape it wants.
//
// Unrecognized keys never fail a build; they are reported to the injected
// Reporter and skipped. A parent id that does not resolve fails the build
// with an error matching ErrLookupFailure. FindAncestorOfType walks the
// parent chain and returns an error matching ErrAncestorNotFound when the
// root is reached without a match.
package build
