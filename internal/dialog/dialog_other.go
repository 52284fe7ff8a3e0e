//go:build !darwin

package dialog

import (
	"fmt"
	"os"
)

// Alert prints the message to stderr on platforms without a native
// alert dialog.
func Alert(title, message string) error {
	_, err := fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
	return err
}

// Notify prints the message to stdout on platforms without a native
// notification surface.
func Notify(title, message string) error {
	_, err := fmt.Printf("%s: %s\n", title, message)
	return err
}
