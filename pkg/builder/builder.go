// Package builder assembles catalog documents from configuration and renders
// them through the serializer.
package builder

import (
	"io"

	"go.uber.org/zap"

	"github.com/goliatone/go-bmecat/pkg/node"
	"github.com/goliatone/go-bmecat/pkg/schema"
	"github.com/goliatone/go-bmecat/pkg/serialize"
)

// DocumentBuilder owns one document under construction. It is not safe for
// concurrent mutation; use one builder per document.
type DocumentBuilder struct {
	logger               *zap.Logger
	version              string
	registry             *schema.Registry
	serializeNull        bool
	strictKeys           bool
	sanitizeDescriptions bool

	document *node.Document
}

// New constructs a builder and calls Build so a document is ready for use.
func New(options ...Option) *DocumentBuilder {
	b := &DocumentBuilder{
		logger:  zap.NewNop(),
		version: schema.DefaultVersion,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	b.Build()
	return b
}

// Build discards the current document and starts an empty one with a
// header, empty catalog and supplier descriptors, and an empty catalog body.
// Options survive the reset: the version, the null flag and the key and
// sanitize settings apply to the next document unchanged.
func (b *DocumentBuilder) Build() {
	b.document = node.NewDocument()
	b.logger.Debug("builder: document reset")
}

// Load applies the set leaves of cfg onto the current document. A set
// document.format_version replaces the version written by Serialize.
func (b *DocumentBuilder) Load(cfg Config) {
	if v := cfg.Document.FormatVersion; v != nil {
		b.version = *v
	}
	cfg.Apply(b.document)
	products := 0
	if nc := cfg.Document.NewCatalog; nc != nil {
		products = len(nc.Products)
	}
	b.logger.Debug("builder: configuration loaded",
		zap.Strings("keys", cfg.Keys()),
		zap.Int("products", products),
	)
}

// LoadMap decodes a nested mapping such as
//
//	map[string]any{"document": map[string]any{"header": ...}}
//
// and applies it. It fails with a *errors.ConfigurationError when the input
// is not a mapping or a nested value has the wrong shape.
func (b *DocumentBuilder) LoadMap(raw any) error {
	cfg, err := DecodeMap(raw, b.strictKeys)
	if err != nil {
		return err
	}
	b.Load(cfg)
	return nil
}

// LoadYAML decodes YAML or JSON configuration from r and applies it.
func (b *DocumentBuilder) LoadYAML(r io.Reader) error {
	cfg, err := DecodeYAML(r, b.strictKeys)
	if err != nil {
		return err
	}
	b.Load(cfg)
	return nil
}

// Document returns the live document. Callers may keep attaching nodes to it.
func (b *DocumentBuilder) Document() *node.Document {
	return b.document
}

// SetSerializeNull sets whether unset fields are written as empty elements.
func (b *DocumentBuilder) SetSerializeNull(enabled bool) {
	b.serializeNull = enabled
}

// SerializeNull reports the current null emission flag.
func (b *DocumentBuilder) SerializeNull() bool {
	return b.serializeNull
}

// Version returns the format version written by Serialize.
func (b *DocumentBuilder) Version() string {
	return b.version
}

// SetVersion selects the format version written by Serialize. Unknown
// versions surface as a *errors.ConfigurationError from Serialize.
func (b *DocumentBuilder) SetVersion(version string) {
	b.version = version
}

// Serialize renders the current document under the current null emission
// flag.
func (b *DocumentBuilder) Serialize() (string, error) {
	out, err := serialize.Serialize(b.document, b.serializeOptions())
	if err != nil {
		b.logger.Debug("builder: serialization failed", zap.Error(err))
		return "", err
	}
	b.logger.Debug("builder: document serialized",
		zap.String("version", b.version),
		zap.Bool("serialize_null", b.serializeNull),
		zap.Int("products", b.productCount()),
		zap.Int("bytes", len(out)),
	)
	return out, nil
}

// WriteTo serializes the current document into w.
func (b *DocumentBuilder) WriteTo(w io.Writer) (int64, error) {
	out, err := b.Serialize()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, out)
	return int64(n), err
}

func (b *DocumentBuilder) serializeOptions() serialize.Options {
	return serialize.Options{
		SerializeNull:        b.serializeNull,
		Version:              b.version,
		Registry:             b.registry,
		SanitizeDescriptions: b.sanitizeDescriptions,
	}
}

func (b *DocumentBuilder) productCount() int {
	if b.document == nil || b.document.NewCatalog() == nil {
		return 0
	}
	return len(b.document.NewCatalog().Products())
}
