// Package errors provides coded, structured errors for domkit.
//
// Every failure that crosses a package boundary carries a registered code
// (e.g. "E101") mapping to a category, a short message, a longer detail and
// a documentation link. Errors produced while decoding spec files also carry
// the file location of the offending YAML node so the CLI can print the
// surrounding lines.
//
// # Error Categories
//
//   - build: element construction failures (parent lookup, ancestor search)
//   - spec: spec file decoding failures
//   - config: domkit.json failures
//   - cli: command line failures
//   - server: preview server failures
//   - publish: upload failures
//
// # Usage
//
//	err := errors.New("E101").
//	    WithDetail(`no element with id "sidebar"`).
//	    Wrap(build.ErrLookupFailure)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Parent element not found
//	//
//	//   no element with id "sidebar"
//	//
//	//   Learn more: https://domkit.dev/docs/errors/E101
package errors
