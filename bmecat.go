// Package bmecat builds BMEcat catalog documents, renders them as XML and
// validates the result against the bundled format schemas.
//
//	b := bmecat.NewDocumentBuilder()
//	_ = b.LoadMap(config)
//	b.Document().NewCatalog().AddProduct(product)
//	xml, err := b.Serialize()
//	ok, err := bmecat.IsValid(xml, bmecat.DefaultVersion)
package bmecat

import (
	"github.com/goliatone/go-bmecat/pkg/builder"
	bmeerrors "github.com/goliatone/go-bmecat/pkg/errors"
	"github.com/goliatone/go-bmecat/pkg/schema"
	"github.com/goliatone/go-bmecat/pkg/validation"
)

// DefaultVersion is the format version written when none is configured.
const DefaultVersion = schema.DefaultVersion

// DocumentBuilder aliases builder.DocumentBuilder for top-level callers.
type DocumentBuilder = builder.DocumentBuilder

// Config aliases the typed builder configuration.
type Config = builder.Config

// ConfigurationError, SerializationError and ValidationError alias the error
// kinds returned by the builder, serializer and validator.
type (
	ConfigurationError = bmeerrors.ConfigurationError
	SerializationError = bmeerrors.SerializationError
	ValidationError    = bmeerrors.ValidationError
	Violation          = bmeerrors.Violation
)

var (
	ErrConfiguration = bmeerrors.ErrConfiguration
	ErrSerialization = bmeerrors.ErrSerialization
	ErrValidation    = bmeerrors.ErrValidation
)

// NewDocumentBuilder exposes the builder constructor from the top-level
// module. The returned builder already holds an empty document.
func NewDocumentBuilder(options ...builder.Option) *DocumentBuilder {
	return builder.New(options...)
}

// IsValid reports whether xml conforms to the schema of version using the
// shared validator.
func IsValid(xml, version string) (bool, error) {
	return validation.IsValid(xml, version)
}

// Validate returns a *ValidationError describing every violation found in
// xml, or nil when it conforms.
func Validate(xml, version string) error {
	return validation.Validate(xml, version)
}

// Versions lists the bundled format versions.
func Versions() []string {
	return schema.Default().List()
}
