package serialize

import "github.com/goliatone/go-bmecat/pkg/schema"

// Options controls a single serialization run.
type Options struct {
	// SerializeNull writes unset fields as empty elements and absent child
	// nodes as empty skeletons. When false those elements are omitted.
	SerializeNull bool

	// Version selects the format version. Empty means schema.DefaultVersion.
	Version string

	// Registry resolves Version. Nil means schema.Default().
	Registry *schema.Registry

	// SanitizeDescriptions strips markup outside the allowed subset from
	// DESCRIPTION_LONG values.
	SanitizeDescriptions bool
}

func (o Options) version() string {
	if o.Version == "" {
		return schema.DefaultVersion
	}
	return o.Version
}

func (o Options) registry() *schema.Registry {
	if o.Registry == nil {
		return schema.Default()
	}
	return o.Registry
}
