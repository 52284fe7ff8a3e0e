//go:build darwin

package finisher

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"prsetup/internal/dialog"
	"prsetup/internal/launch"
	"prsetup/internal/quarantine"
)

type darwinProcedure struct {
	opts Options
}

// NewProcedure returns the macOS install finisher: verify the bundle
// is in /Applications, strip the quarantine attribute, notify, open.
func NewProcedure(opts Options) (Procedure, error) {
	return &darwinProcedure{opts: opts}, nil
}

func (p *darwinProcedure) Platform() string { return "darwin" }

func (p *darwinProcedure) Check(ctx context.Context) error {
	info, err := os.Stat(p.opts.BundlePath)
	if err != nil || !info.IsDir() {
		return &MissingPrerequisiteError{
			Path: p.opts.BundlePath,
			Hint: fmt.Sprintf("%s was not found in the Applications folder. Move %s there first, then run this helper again.",
				p.opts.AppName, p.opts.AppName+".app"),
		}
	}
	return nil
}

func (p *darwinProcedure) ReportMissing(err *MissingPrerequisiteError) {
	if alertErr := dialog.Alert(p.opts.AppName+" Setup", err.Hint); alertErr != nil {
		log.Warnf("failed to show alert: %v", alertErr)
		fmt.Fprintln(os.Stderr, err.Hint)
	}
}

func (p *darwinProcedure) Steps() []Step {
	return []Step{
		{
			Name:       "clear quarantine attribute",
			BestEffort: true,
			Run: func(context.Context) error {
				return quarantine.Clear(p.opts.BundlePath)
			},
		},
		{
			Name:       "show completion notification",
			BestEffort: true,
			Run: func(context.Context) error {
				return dialog.Notify(p.opts.AppName+" Setup", p.opts.AppName+" is ready to use.")
			},
		},
	}
}

func (p *darwinProcedure) Launch(context.Context) error {
	return launch.Open(p.opts.BundlePath)
}

func (p *darwinProcedure) Summary() string {
	return fmt.Sprintf("%s is installed at %s", p.opts.AppName, p.opts.BundlePath)
}
