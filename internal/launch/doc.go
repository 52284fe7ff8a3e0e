// Package launch starts the installed application the way the
// platform's "open" mechanism would.
package launch
