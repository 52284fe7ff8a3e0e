//go:build windows

package finisher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"

	"prsetup/internal/fsutil"
	"prsetup/internal/launch"
	"prsetup/internal/paths"
	"prsetup/internal/quarantine"
	"prsetup/internal/shortcut"
)

type windowsProcedure struct {
	opts         Options
	sourcePath   string
	installDir   string
	installedExe string
	shortcutPath string
}

// NewProcedure returns the Windows install finisher: verify the
// companion executable sits next to this binary, copy it into Program
// Files, clear its download mark, create a Start Menu shortcut, launch.
func NewProcedure(opts Options) (Procedure, error) {
	exeDir, err := paths.ExecutableDir()
	if err != nil {
		return nil, err
	}

	installDir := paths.InstallDir(opts.AppName)
	return &windowsProcedure{
		opts:         opts,
		sourcePath:   filepath.Join(exeDir, opts.ExeName),
		installDir:   installDir,
		installedExe: filepath.Join(installDir, opts.ExeName),
		shortcutPath: filepath.Join(paths.StartMenuPrograms(), opts.AppName+".lnk"),
	}, nil
}

func (p *windowsProcedure) Platform() string { return "windows" }

func (p *windowsProcedure) Check(ctx context.Context) error {
	info, err := os.Stat(p.sourcePath)
	if err != nil || info.IsDir() {
		return &MissingPrerequisiteError{
			Path: p.sourcePath,
			Hint: fmt.Sprintf("%s was not found next to the installer. Keep both files in the same folder and run the installer again.", p.opts.ExeName),
		}
	}
	return nil
}

func (p *windowsProcedure) ReportMissing(err *MissingPrerequisiteError) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Hint)
}

func (p *windowsProcedure) Steps() []Step {
	return []Step{
		{
			Name: "create install directory",
			Run: func(context.Context) error {
				return os.MkdirAll(p.installDir, 0755)
			},
		},
		{
			Name:       "clear download mark",
			BestEffort: true,
			Run: func(context.Context) error {
				return quarantine.Clear(p.sourcePath)
			},
		},
		{
			Name: "copy executable",
			Run: func(context.Context) error {
				return fsutil.CopyFile(p.sourcePath, p.installedExe)
			},
		},
		{
			Name: "create start menu shortcut",
			Run: func(context.Context) error {
				return shortcut.Create(shortcut.Spec{
					Path:        p.shortcutPath,
					Target:      p.installedExe,
					WorkingDir:  p.installDir,
					Description: p.opts.AppName,
					WindowStyle: shortcut.WindowNormal,
				})
			},
		},
		{
			Name:       "record install location",
			BestEffort: true,
			Run: func(context.Context) error {
				return p.recordInstallLocation()
			},
		},
	}
}

// recordInstallLocation leaves a small registry breadcrumb so later
// runs and support tooling can see where the app went.
func (p *windowsProcedure) recordInstallLocation() error {
	keyPath := fmt.Sprintf(`SOFTWARE\%s\Setup`, p.opts.AppName)
	key, _, err := registry.CreateKey(registry.CURRENT_USER, keyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to create registry key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue("InstallLocation", p.installDir); err != nil {
		return err
	}
	if p.opts.Version != "" {
		if err := key.SetStringValue("DisplayVersion", p.opts.Version); err != nil {
			return err
		}
	}
	return nil
}

func (p *windowsProcedure) Launch(context.Context) error {
	return launch.Open(p.installedExe)
}

func (p *windowsProcedure) Summary() string {
	return fmt.Sprintf("Installed %s to %s\nStart Menu shortcut: %s",
		p.opts.AppName, p.installedExe, p.shortcutPath)
}
