// Package console is the terminal-facing edge of the quiz trainer. It reads
// one line at a time through a LineReader (a full line editor on a terminal,
// a plain buffered reader otherwise) and writes user-facing text through a
// Printer.
package console
