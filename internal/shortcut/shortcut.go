// Package shortcut creates Windows shell shortcuts (.lnk files).
package shortcut

import "errors"

// Window styles understood by the shell link object.
const (
	WindowNormal    = 1
	WindowMaximized = 3
	WindowMinimized = 7
)

// Spec describes a shortcut to create.
type Spec struct {
	// Path is the destination .lnk file. An existing shortcut at this
	// path is replaced.
	Path string
	// Target is the file the shortcut points at.
	Target string
	// WorkingDir is the directory the target starts in.
	WorkingDir string
	// Description is shown in the shortcut's tooltip.
	Description string
	// IconPath optionally points at an .ico file.
	IconPath string
	// WindowStyle is one of the Window* constants; zero means
	// WindowNormal.
	WindowStyle int
}

func (s Spec) validate() error {
	if s.Path == "" {
		return errors.New("shortcut: destination path is empty")
	}
	if s.Target == "" {
		return errors.New("shortcut: target path is empty")
	}
	switch s.WindowStyle {
	case 0, WindowNormal, WindowMaximized, WindowMinimized:
		return nil
	}
	return errors.New("shortcut: invalid window style")
}

func (s Spec) windowStyle() int {
	if s.WindowStyle == 0 {
		return WindowNormal
	}
	return s.WindowStyle
}

// Create writes the shortcut described by s, replacing any existing
// file at s.Path.
func Create(s Spec) error {
	if err := s.validate(); err != nil {
		return err
	}
	return create(s)
}
