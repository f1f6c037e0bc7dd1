// Package manifest reads, patches, and writes the package.json manifest of a
// Vnite plugin. Documents keep their key order so fields the generator does not
// own pass through untouched, and written manifests can be checked against the
// embedded JSON Schema.
package manifest
