// Package site turns a directory of spec files into HTML pages.
//
// A Site decodes a spec file, builds it on a fresh dom.Document and
// renders the result, either as a full page or as a fragment. The preview
// server and the CLI share this pipeline.
package site
