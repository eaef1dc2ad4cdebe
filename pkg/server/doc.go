// Package server provides the domkit preview server.
//
// Routes:
//
//	GET  /                 index of the spec files
//	GET  /specs            spec names as JSON
//	GET  /render/{name}    the named spec rendered as a page
//	POST /render           a spec document in the body, rendered as a fragment
//	GET  /metrics          Prometheus metrics
//	GET  /livereload       websocket sending "reload" when a spec file changes
//
// An unknown spec answers 404, a spec that fails to decode 400 and a build
// failure such as a missing parent 422. Error bodies carry the coded error
// message.
package server
