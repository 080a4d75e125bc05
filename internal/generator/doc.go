// Package generator drives one scaffolding run: it reads the options, asks
// the questions, writes the project, installs its packages, optionally
// initializes git and prints the next steps.
package generator
