// Package platform smooths over permission handling differences between Unix
// and Windows for files written into a generated plugin.
package platform
