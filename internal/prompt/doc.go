// Package prompt runs the interactive questionnaire that configures a new
// plugin. Questions are asked one at a time over a LineReader; answers are
// validated and re-asked until usable, and the whole flow can be cancelled
// between questions.
package prompt
