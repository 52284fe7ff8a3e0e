package finisher

// Options fixes the names and paths a procedure works from.
type Options struct {
	// AppName is the display name, also used for the install directory
	// and the shortcut file.
	AppName string
	// BundlePath is the target application bundle on macOS.
	BundlePath string
	// ExeName is the companion executable expected next to the
	// finisher on Windows.
	ExeName string
	// Version is recorded alongside the install location.
	Version string
}

// DefaultOptions returns the fixed PhotoResize paths.
func DefaultOptions() Options {
	return Options{
		AppName:    "PhotoResize",
		BundlePath: "/Applications/PhotoResize.app",
		ExeName:    "PhotoResize.exe",
	}
}
