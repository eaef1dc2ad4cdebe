// Package specfile decodes element specs from YAML or JSON documents.
//
// A spec document names a tag and the spec to build it with:
//
//	tag: table
//	spec:
//	  id: results
//	  class: table table-sm
//	  events:
//	    - [click, rowClicked]
//	  tableData:
//	    - {a: 1, b: 2}
//	    - {a: 3, b: 4}
//
// Mapping order is preserved all the way into build.Spec, so keys are
// applied in the order they are written. Event handlers are referenced by
// name and resolved through the Handlers passed to the decoder. JSON input
// is accepted as the YAML flow subset.
package specfile
