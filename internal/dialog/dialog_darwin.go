//go:build darwin

package dialog

import "os/exec"

// Alert displays a blocking critical alert dialog and returns once the
// user dismisses it.
func Alert(title, message string) error {
	return exec.Command("osascript", "-e", alertScript(title, message)).Run()
}

// Notify posts a non-blocking banner to Notification Center.
func Notify(title, message string) error {
	return exec.Command("osascript", "-e", notificationScript(title, message)).Run()
}
