// Package reader implements the DocumentReader port for local files.
// It dispatches on file extension: plain text is read directly, PDF text
// is extracted from page content streams via pdfcpu.
package reader
