// Package plugin defines the answer record collected for a new Vnite plugin
// and the naming rules shared by the prompt flow and the scaffold generator:
// identifier validation, slug formatting, and keyword derivation.
package plugin
