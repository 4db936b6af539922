package builder

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-bmecat/pkg/schema"
)

// Option customises a DocumentBuilder.
type Option func(*DocumentBuilder)

// WithLogger sets the logger for build, load and serialize events.
func WithLogger(logger *zap.Logger) Option {
	return func(b *DocumentBuilder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithVersion selects the format version written by Serialize.
func WithVersion(version string) Option {
	return func(b *DocumentBuilder) {
		b.version = version
	}
}

// WithRegistry resolves versions against reg instead of schema.Default().
func WithRegistry(reg *schema.Registry) Option {
	return func(b *DocumentBuilder) {
		b.registry = reg
	}
}

// WithSerializeNull sets the initial null emission flag.
func WithSerializeNull(enabled bool) Option {
	return func(b *DocumentBuilder) {
		b.serializeNull = enabled
	}
}

// WithStrictKeys makes LoadMap and LoadYAML reject unknown keys.
func WithStrictKeys(enabled bool) Option {
	return func(b *DocumentBuilder) {
		b.strictKeys = enabled
	}
}

// WithSanitizedDescriptions strips unsupported markup from long
// descriptions during serialization.
func WithSanitizedDescriptions(enabled bool) Option {
	return func(b *DocumentBuilder) {
		b.sanitizeDescriptions = enabled
	}
}
