// Package extract implements the tag extraction operation: read a string
// table's header row and write its language tags to a flat text file, one
// tag per line.
package extract
