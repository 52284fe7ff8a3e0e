//go:build !darwin && !windows

package launch

import "os/exec"

// Open launches path with the desktop's default handler.
func Open(path string) error {
	return exec.Command("xdg-open", path).Start()
}
