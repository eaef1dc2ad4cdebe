// Package render serializes dom trees to HTML.
//
// Output is deterministic: attributes are written in insertion order, the
// style attribute comes from the element's ordered style map and the class
// attribute from its class list. Text is escaped, the contents of script
// and style elements are written verbatim, and void elements have no
// closing tag.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	page := render.PageData{
//	    Body:  doc.Body(),
//	    Title: "Report",
//	}
//	err := renderer.RenderPage(w, page)
//
// When Body is a body element only its children are rendered inside the
// page's own body tag.
//
// # Event Markers
//
// With RendererConfig.EventMarkers set, every element with listeners gets
// a data-on-<event>="true" attribute per event type so client code can
// find the bound elements.
//
// # Streaming
//
// StreamingRenderer flushes after the head and after the body content:
//
//	sr := render.NewStreamingRenderer(w, config)
//	err := sr.RenderPage(page)
package render
