package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ExecutableDir returns the directory containing the running binary.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	return filepath.Dir(exe), nil
}

// InstallDir returns the machine-wide install directory for app,
// resolved from the ProgramFiles environment variable.
func InstallDir(app string) string {
	base := os.Getenv("ProgramFiles")
	if base == "" {
		base = `C:\Program Files`
	}
	return filepath.Join(base, app)
}

// StartMenuPrograms returns the shared Start Menu programs folder,
// resolved from the ProgramData environment variable.
func StartMenuPrograms() string {
	base := os.Getenv("ProgramData")
	if base == "" {
		base = `C:\ProgramData`
	}
	return filepath.Join(base, "Microsoft", "Windows", "Start Menu", "Programs")
}

// DataDir returns the platform-specific per-user data directory for app.
func DataDir(app string) string {
	var base string

	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.Getenv("HOME")
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			base = filepath.Join(os.Getenv("HOME"), ".local", "share")
		}
	}

	return filepath.Join(base, app)
}
