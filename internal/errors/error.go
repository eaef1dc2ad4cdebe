package errors

import (
	"bufio"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryBuild   Category = "build"
	CategorySpec    Category = "spec"
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
	CategoryServer  Category = "server"
	CategoryPublish Category = "publish"
)

// Location represents a position inside a spec or config file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// DomError is a structured error with a registered code, optional file
// location and a fix suggestion.
type DomError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (build, spec, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the file location where the error occurred.
	Location *Location

	// Context contains surrounding file lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *DomError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" && e.Detail != e.Message {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *DomError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a file location to the error.
func (e *DomError) WithLocation(file string, line, column int) *DomError {
	e.Location = &Location{File: file, Line: line, Column: column}
	if file != "" {
		e.Context = readContextLines(file, line, contextLines)
	}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *DomError) WithSuggestion(s string) *DomError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *DomError) WithDetail(d string) *DomError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detailed explanation to the error.
func (e *DomError) WithDetailf(format string, args ...any) *DomError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *DomError) Wrap(err error) *DomError {
	e.Wrapped = err
	return e
}

// contextLines is how many source lines surround a located error.
const contextLines = 5

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a DomError from a registered error code.
func New(code string) *DomError {
	template, ok := registry[code]
	if !ok {
		return &DomError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &DomError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new DomError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *DomError {
	return &DomError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a DomError.
func FromError(err error, code string) *DomError {
	if err == nil {
		return nil
	}
	if de, ok := err.(*DomError); ok {
		return de
	}
	return New(code).Wrap(err)
}
