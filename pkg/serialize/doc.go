// Package serialize renders a node.Document to catalog XML.
//
// The walk follows each node's Members in order, so element order is fixed
// by the node types and by attachment order of child collections. The
// SerializeNull flag only decides whether unset members appear as empty
// elements; it never reorders the elements that are written in both modes.
package serialize
