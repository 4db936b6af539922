package schema

import (
	"embed"
	"io/fs"
)

//go:embed xsd/*
var embeddedSchemas embed.FS

// EmbeddedFS returns the bundled XSD resources.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedSchemas, "xsd")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
