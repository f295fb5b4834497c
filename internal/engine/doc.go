// Package engine implements the interactive command loop of the quiz trainer.
//
// # Control Flow
//
// Run reads one line at the top-level prompt, splits it into a command name
// and an optional index argument, and dispatches it through the command
// table. Immediate commands (list, show, delete, ...) finish right away.
// Interactive commands (add, edit, test, play) read their follow-up lines
// from the same LineReader before returning.
//
// Because a handler reads its follow-up lines synchronously, the top-level
// prompt can only be shown again after the handler has returned. There is
// never more than one pending prompt, and a follow-up answer can never be
// mistaken for a new command.
//
// # Errors
//
// Every error a handler returns is reported to the user as a single
// "Error: ..." line and the loop continues. Only quit, end of input and
// context cancellation stop the loop, and only a read failure makes Run
// return an error.
package engine
