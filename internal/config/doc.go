// Package config resolves the settings that seed the prompt defaults and
// locate the template trees. Values come from built-in defaults, an optional
// config file named on the command line, and command-line flags, in increasing
// order of precedence. Nothing is read from the environment or written back.
package config
