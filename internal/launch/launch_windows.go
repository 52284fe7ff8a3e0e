//go:build windows

package launch

import (
	"fmt"
	"os/exec"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Open starts the executable at path detached from the finisher, with
// its working directory set to its own folder.
func Open(path string) error {
	cmd := exec.Command(path)
	cmd.Dir = filepath.Dir(path)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", path, err)
	}

	// Release the process so the OS can fully detach it.
	if err := cmd.Process.Release(); err != nil {
		log.Warnf("failed to release process handle: %v", err)
	}
	return nil
}
