package schema

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	bmeerrors "github.com/goliatone/go-bmecat/pkg/errors"
)

// DefaultVersion is the format version used when callers do not pick one.
const DefaultVersion = "2005.1"

// Version describes one supported format version.
type Version struct {
	// ID is the version string written to the root version attribute.
	ID string
	// Namespace is the default XML namespace of the document element.
	Namespace string
	// Resource is the XSD path inside FS.
	Resource string
	// FS holds Resource and any schemas it includes.
	FS fs.FS
}

// Registry stores versions by ID.
type Registry struct {
	mu       sync.RWMutex
	versions map[string]Version
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{versions: make(map[string]Version)}
}

// Register adds a version. Duplicate IDs return an error.
func (r *Registry) Register(v Version) error {
	id := strings.TrimSpace(v.ID)
	if id == "" {
		return fmt.Errorf("schema: version id is required")
	}
	if v.FS == nil || v.Resource == "" {
		return fmt.Errorf("schema: version %q requires a resource", id)
	}
	if _, err := fs.Stat(v.FS, v.Resource); err != nil {
		return fmt.Errorf("schema: version %q resource %q: %w", id, v.Resource, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.versions[id]; exists {
		return fmt.Errorf("schema: version %q already registered", id)
	}
	v.ID = id
	r.versions[id] = v
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(v Version) {
	if err := r.Register(v); err != nil {
		panic(err)
	}
}

// Resolve returns the version registered under id. Unknown ids fail with a
// *errors.ConfigurationError; there is no fallback version.
func (r *Registry) Resolve(id string) (Version, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.versions[id]
	if !ok {
		return Version{}, bmeerrors.NewConfigurationError("schema version", fmt.Sprintf("unknown version %q", id), nil)
	}
	return v, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.versions[id]
	return ok
}

// List returns the registered version ids, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.versions))
	for id := range r.versions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry holding the bundled versions.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg := NewRegistry()
		reg.MustRegister(Version{
			ID:        "2005.1",
			Namespace: "http://www.bmecat.org/bmecat/2005",
			Resource:  "bmecat_2005.1.xsd",
			FS:        EmbeddedFS(),
		})
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Resolve looks id up in the default registry.
func Resolve(id string) (Version, error) {
	return Default().Resolve(id)
}
