// Package cli defines the Cobra root command for create-vnite-plugin. The
// command only parses flags, wires the prompt collector to the terminal and
// formats output; the work itself lives in the prompt and scaffold packages.
package cli
