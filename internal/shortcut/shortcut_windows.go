//go:build windows

package shortcut

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// create writes the shortcut through the WScript.Shell COM object.
func create(s Spec) error {
	ole.CoInitialize(0)
	defer ole.CoUninitialize()

	oleShellObject, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return fmt.Errorf("failed to create WScript.Shell: %w", err)
	}
	defer oleShellObject.Release()

	wshell, err := oleShellObject.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("failed to query IDispatch: %w", err)
	}
	defer wshell.Release()

	cs, err := oleutil.CallMethod(wshell, "CreateShortcut", s.Path)
	if err != nil {
		return fmt.Errorf("failed to create shortcut object: %w", err)
	}
	link := cs.ToIDispatch()
	defer link.Release()

	if _, err := oleutil.PutProperty(link, "TargetPath", s.Target); err != nil {
		return fmt.Errorf("failed to set target path: %w", err)
	}
	if s.WorkingDir != "" {
		if _, err := oleutil.PutProperty(link, "WorkingDirectory", s.WorkingDir); err != nil {
			return fmt.Errorf("failed to set working directory: %w", err)
		}
	}
	if s.Description != "" {
		if _, err := oleutil.PutProperty(link, "Description", s.Description); err != nil {
			return fmt.Errorf("failed to set description: %w", err)
		}
	}
	if s.IconPath != "" {
		if _, err := oleutil.PutProperty(link, "IconLocation", s.IconPath); err != nil {
			return fmt.Errorf("failed to set icon: %w", err)
		}
	}
	if _, err := oleutil.PutProperty(link, "WindowStyle", s.windowStyle()); err != nil {
		return fmt.Errorf("failed to set window style: %w", err)
	}

	if _, err := oleutil.CallMethod(link, "Save"); err != nil {
		return fmt.Errorf("failed to save shortcut: %w", err)
	}
	return nil
}
