// Package cli implements the maze-wizard command line: it parses and checks
// the source and destination arguments, solves the maze and reports failures
// one per line on the error stream.
package cli
