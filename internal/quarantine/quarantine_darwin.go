//go:build darwin

package quarantine

import "os/exec"

// Clear removes the com.apple.quarantine extended attribute from path
// and everything beneath it. Callers treat failures as best-effort:
// the attribute may be absent, or nested files may not be writable.
func Clear(path string) error {
	return exec.Command("xattr", "-d", "-r", "com.apple.quarantine", path).Run()
}
