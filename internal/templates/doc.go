// Package templates renders the contents of every file the generator emits.
//
// Each file kind is a Request variant carrying its own typed options; Render
// dispatches on the concrete type. Rendering is pure: it never touches the
// filesystem and the same request always yields the same bytes.
package templates
