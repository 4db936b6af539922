package serialize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

// SanitizeMarkup keeps the small markup subset catalog importers render in
// long descriptions and drops everything else, including scripts and
// attributes.
func SanitizeMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(descriptionSanitizer().Sanitize(trimmed))
}

func descriptionSanitizer() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "br", "i", "u", "p", "ul", "ol", "li", "strong", "em", "sub", "sup")
		descriptionPolicy = policy
	})
	return descriptionPolicy
}
