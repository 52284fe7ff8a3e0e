// Package quarantine clears the per-platform "downloaded from the
// internet" marker: the com.apple.quarantine extended attribute on
// macOS and the Zone.Identifier alternate data stream on Windows.
package quarantine
