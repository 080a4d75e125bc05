// Package manifest reads and validates the package.json written into a
// generated project. The schema is embedded and checked with
// santhosh-tekuri/jsonschema.
package manifest
