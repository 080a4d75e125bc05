// Package installer drives the external programs run after the files are
// written: the package manager install and the optional git init.
//
// A failed install is not fatal. The command that would have installed the
// packages is written to a file named "packages" so it can be retried by hand.
package installer
