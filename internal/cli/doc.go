// Package cli implements the interactive terminal session of the volunteer
// hours tracker.
//
// The REPL reads one command per line, prompts for the fields the command
// needs and runs it through the middleware chain built in NewApp. The
// logged-in identity lives only in memory for the lifetime of the process.
package cli
