// Package errors defines the error kinds surfaced while building, serializing
// and validating catalog documents. Each kind matches its sentinel through
// errors.Is so callers can branch on the kind without type assertions.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration matches any *ConfigurationError.
	ErrConfiguration = errors.New("configuration error")
	// ErrSerialization matches any *SerializationError.
	ErrSerialization = errors.New("serialization error")
	// ErrValidation matches any *ValidationError.
	ErrValidation = errors.New("validation error")
)

// ConfigurationError reports malformed input shapes or unknown schema versions.
type ConfigurationError struct {
	// Key is the dotted configuration path involved, when known.
	Key    string
	Reason string
	Err    error
}

// NewConfigurationError builds a ConfigurationError for the given key.
func NewConfigurationError(key, reason string, err error) *ConfigurationError {
	return &ConfigurationError{Key: key, Reason: reason, Err: err}
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("configuration: ")
	if e.Key != "" {
		b.WriteString(e.Key)
		b.WriteString(": ")
	}
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// SerializationError reports a document that lacks structurally required parts.
type SerializationError struct {
	// Node names the element that could not be rendered.
	Node   string
	Reason string
	Err    error
}

// NewSerializationError builds a SerializationError for the named node.
func NewSerializationError(node, reason string, err error) *SerializationError {
	return &SerializationError{Node: node, Reason: reason, Err: err}
}

func (e *SerializationError) Error() string {
	msg := fmt.Sprintf("serialization: %s: %s", e.Node, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SerializationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrSerialization.
func (e *SerializationError) Is(target error) bool { return target == ErrSerialization }

// Violation is one schema violation found in a rendered document.
type Violation struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

func (v Violation) String() string {
	var b strings.Builder
	if v.Code != "" {
		b.WriteString("[")
		b.WriteString(v.Code)
		b.WriteString("] ")
	}
	b.WriteString(v.Message)
	if v.Path != "" {
		b.WriteString(" at ")
		b.WriteString(v.Path)
	}
	if v.Line > 0 {
		fmt.Fprintf(&b, " (line %d, column %d)", v.Line, v.Column)
	}
	return b.String()
}

// ValidationError carries the violations found when checking a document
// against a schema version.
type ValidationError struct {
	Version    string
	Violations []Violation
	// Malformed is set when the input could not be parsed as XML at all.
	Malformed bool
}

func (e *ValidationError) Error() string {
	prefix := "validation"
	if e.Version != "" {
		prefix = fmt.Sprintf("validation (schema %s)", e.Version)
	}
	if e.Malformed {
		prefix += ": malformed xml"
	}
	switch len(e.Violations) {
	case 0:
		return prefix + ": document rejected"
	case 1:
		return prefix + ": " + e.Violations[0].String()
	default:
		return fmt.Sprintf("%s: %s (and %d more)", prefix, e.Violations[0].String(), len(e.Violations)-1)
	}
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Messages returns the violation descriptions in reported order.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, v.String())
	}
	return out
}

// AsValidation extracts a *ValidationError from err.
func AsValidation(err error) (*ValidationError, bool) {
	var target *ValidationError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
