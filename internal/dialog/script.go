// Package dialog shows native user-facing alerts and notifications.
// On macOS it drives Notification Center and the alert dialog through
// osascript; elsewhere it falls back to the console.
package dialog

import (
	"fmt"
	"strings"
)

// quote escapes s for use inside a double-quoted AppleScript string.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func alertScript(title, message string) string {
	return fmt.Sprintf(`display alert %s message %s as critical buttons {"OK"} default button "OK"`,
		quote(title), quote(message))
}

func notificationScript(title, message string) string {
	return fmt.Sprintf("display notification %s with title %s", quote(message), quote(title))
}
