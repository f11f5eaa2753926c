// Package docsearch provides a documentation search helper. It fetches a
// versioned metadata index describing a documentation tree, caches it
// locally, and flattens it into searchable entries with direct deep-links.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, github/).
package docsearch
