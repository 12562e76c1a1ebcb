package pipeline

import "fmt"

// StreamError reports a failure reading the input stream.
type StreamError struct {
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("read stream: %v", e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }

// ParseError reports a line that is not valid JSON or lacks a usable
// vertex/edge discriminator. The line number is one-based.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a dump that parsed but violates the format contract:
// missing metadata, missing project root, or an unsupported version.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string { return e.Msg }
