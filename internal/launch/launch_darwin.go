//go:build darwin

package launch

import "os/exec"

// Open launches path with the system default handler. For an .app
// bundle this is the same as double-clicking it in Finder.
func Open(path string) error {
	return exec.Command("open", path).Start()
}
