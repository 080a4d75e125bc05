// Package cli defines the Cobra command tree for suf-gen. The root command
// runs the generator with its own option parsing; each other file registers
// one subcommand. Commands only wire settings and I/O to internal packages.
package cli
