// Package scaffold generates a new Vnite plugin project from a category
// template. It powers the whole create flow after the questionnaire: it checks
// preconditions, copies the template tree, patches package.json, writes the
// README, and removes the half-built project if any step fails.
package scaffold
