package apperr

import "fmt"

// MalformedArtifactError reports a result artifact that could not be decoded
// or is missing a required field.
type MalformedArtifactError struct {
	Path string
	Err  error
}

func (e *MalformedArtifactError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed result artifact %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("malformed result artifact %s", e.Path)
}

func (e *MalformedArtifactError) Unwrap() error {
	return e.Err
}

func NewMalformedArtifact(path string, err error) *MalformedArtifactError {
	return &MalformedArtifactError{Path: path, Err: err}
}

// MissingGraphMetadataError reports that the run metadata lacks the graph
// edge count needed to derive the cut ratio.
type MissingGraphMetadataError struct {
	Graph string
}

func (e *MissingGraphMetadataError) Error() string {
	return fmt.Sprintf("run metadata for graph %q has no edge count", e.Graph)
}

func NewMissingGraphMetadata(graph string) *MissingGraphMetadataError {
	return &MissingGraphMetadataError{Graph: graph}
}

// MalformedLineError reports a result line that does not match the fixed
// four-field format.
type MalformedLineError struct {
	Line   string
	Reason string
	Err    error
}

func (e *MalformedLineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed result line %q: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed result line %q: %s", e.Line, e.Reason)
}

func (e *MalformedLineError) Unwrap() error {
	return e.Err
}

func NewMalformedLine(line, reason string) *MalformedLineError {
	return &MalformedLineError{Line: line, Reason: reason}
}

func NewMalformedLineWrap(line, reason string, err error) *MalformedLineError {
	return &MalformedLineError{Line: line, Reason: reason, Err: err}
}

// InvalidPathComponentError reports a table path component containing a path
// separator.
type InvalidPathComponentError struct {
	Component string
	Value     string
}

func (e *InvalidPathComponentError) Error() string {
	return fmt.Sprintf("invalid path component %s=%q", e.Component, e.Value)
}

func NewInvalidPathComponent(component, value string) *InvalidPathComponentError {
	return &InvalidPathComponentError{Component: component, Value: value}
}

// IOError reports a table read or write failure, distinct from parse errors.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func NewIO(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}
