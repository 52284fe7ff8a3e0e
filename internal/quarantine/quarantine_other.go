//go:build !darwin && !windows

package quarantine

// Clear is a no-op on platforms without a download-origin marker.
func Clear(path string) error {
	return nil
}
