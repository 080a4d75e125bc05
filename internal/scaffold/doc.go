// Package scaffold lays out and writes a new project. Plan decides which
// files a set of answers produces and in what order; Generate renders each
// one through the templates package and hands it to a Writer.
package scaffold
