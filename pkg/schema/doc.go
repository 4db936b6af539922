// Package schema resolves catalog format versions to their namespace and the
// bundled XSD resource used to validate documents of that version.
package schema
