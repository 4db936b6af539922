// Package node holds the catalog document tree: the Document aggregate, its
// Header and the NewCatalog body with products, prices, features, mime entries
// and order details.
//
// Nodes are plain mutable records. Setters never validate; a value set twice
// simply keeps the last write, and correctness is left to schema validation.
// Child collections are append-only and keep attachment order, which is also
// the order the serializer writes them in.
//
// Every node implements Node, describing itself as an element name, a set of
// constant attributes and an ordered list of Members. The serializer walks
// that description without knowing concrete node types.
package node
