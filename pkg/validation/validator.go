// Package validation checks rendered catalog XML against the bundled XSD of
// a format version.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/beevik/etree"
	"github.com/jacoelho/xsd"
	xsderrors "github.com/jacoelho/xsd/errors"
	"go.uber.org/zap"

	bmeerrors "github.com/goliatone/go-bmecat/pkg/errors"
	"github.com/goliatone/go-bmecat/pkg/schema"
)

// Option customises a Validator.
type Option func(*Validator)

// WithRegistry resolves versions against reg instead of schema.Default().
func WithRegistry(reg *schema.Registry) Option {
	return func(v *Validator) {
		if reg != nil {
			v.registry = reg
		}
	}
}

// WithLogger sets the logger used for compile and validation events.
func WithLogger(logger *zap.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// Validator validates XML text against versioned schemas. Compiled schemas
// are cached per version; a Validator is safe for concurrent use.
type Validator struct {
	registry *schema.Registry
	logger   *zap.Logger

	mu       sync.Mutex
	compiled map[string]*compiledSchema
}

type compiledSchema struct {
	once   sync.Once
	schema *xsd.Schema
	err    error
}

// New constructs a Validator.
func New(options ...Option) *Validator {
	v := &Validator{
		registry: schema.Default(),
		logger:   zap.NewNop(),
		compiled: make(map[string]*compiledSchema),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

// Versions lists the versions the validator can resolve.
func (v *Validator) Versions() []string {
	return v.registry.List()
}

// IsValid reports whether xmlText conforms to the schema of version.
// Schema violations yield (false, nil). Malformed XML yields (false, err)
// with a *errors.ValidationError, and unknown versions yield a
// *errors.ConfigurationError.
func (v *Validator) IsValid(xmlText, version string) (bool, error) {
	err := v.Validate(xmlText, version)
	if err == nil {
		return true, nil
	}
	if verr, ok := bmeerrors.AsValidation(err); ok && !verr.Malformed {
		return false, nil
	}
	return false, err
}

// Validate checks xmlText against the schema of version and returns a
// *errors.ValidationError listing every violation found.
func (v *Validator) Validate(xmlText, version string) error {
	resolved, err := v.registry.Resolve(version)
	if err != nil {
		return err
	}

	if verr := checkWellFormed(xmlText, resolved.ID); verr != nil {
		v.logger.Debug("validation: malformed xml", zap.String("version", resolved.ID), zap.Error(verr))
		return verr
	}

	compiled, err := v.schemaFor(resolved)
	if err != nil {
		return err
	}

	err = compiled.Validate(strings.NewReader(xmlText))
	if err == nil {
		v.logger.Debug("validation: document valid", zap.String("version", resolved.ID))
		return nil
	}

	list, ok := xsderrors.AsValidations(err)
	if !ok {
		return fmt.Errorf("validation: schema %s: %w", resolved.ID, err)
	}

	verr := &bmeerrors.ValidationError{Version: resolved.ID}
	for i := range list {
		item := list[i]
		if item.Code == string(xsderrors.ErrXMLParse) {
			verr.Malformed = true
		}
		verr.Violations = append(verr.Violations, bmeerrors.Violation{
			Code:    item.Code,
			Message: strings.TrimSpace(item.Message),
			Path:    item.Path,
			Line:    item.Line,
			Column:  item.Column,
		})
	}
	v.logger.Debug("validation: document rejected",
		zap.String("version", resolved.ID),
		zap.Int("violations", len(verr.Violations)),
		zap.Bool("malformed", verr.Malformed),
	)
	return verr
}

func (v *Validator) schemaFor(version schema.Version) (*xsd.Schema, error) {
	v.mu.Lock()
	entry, ok := v.compiled[version.ID]
	if !ok {
		entry = &compiledSchema{}
		v.compiled[version.ID] = entry
	}
	v.mu.Unlock()

	entry.once.Do(func() {
		entry.schema, entry.err = xsd.LoadWithOptions(version.FS, version.Resource, xsd.NewLoadOptions())
		if entry.err != nil {
			entry.err = bmeerrors.NewConfigurationError("schema resource", "compile "+version.Resource, entry.err)
			v.logger.Error("validation: schema compile failed", zap.String("version", version.ID), zap.Error(entry.err))
			return
		}
		v.logger.Debug("validation: schema compiled", zap.String("version", version.ID), zap.String("resource", version.Resource))
	})
	return entry.schema, entry.err
}

func checkWellFormed(xmlText, version string) *bmeerrors.ValidationError {
	doc := etree.NewDocument()
	err := doc.ReadFromString(xmlText)
	if err == nil && doc.Root() == nil {
		err = errors.New("document has no root element")
	}
	if err == nil {
		return nil
	}
	return &bmeerrors.ValidationError{
		Version:   version,
		Malformed: true,
		Violations: []bmeerrors.Violation{{
			Code:    string(xsderrors.ErrXMLParse),
			Message: err.Error(),
		}},
	}
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
)

// Default returns a shared Validator for the bundled versions.
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// IsValid checks xmlText with the shared Validator.
func IsValid(xmlText, version string) (bool, error) {
	return Default().IsValid(xmlText, version)
}

// Validate checks xmlText with the shared Validator.
func Validate(xmlText, version string) error {
	return Default().Validate(xmlText, version)
}
