// Package finisher runs the final installation steps that turn a
// downloaded PhotoResize artifact into an installed, launchable
// application. Each platform supplies a Procedure; the Runner drives
// it through a fixed sequence: precondition gate, side-effect steps,
// launch.
package finisher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"prsetup/internal/journal"
)

// MissingPrerequisiteError reports that the artifact the finisher
// expects has not been put in place yet. It is always raised before
// any mutation happens.
type MissingPrerequisiteError struct {
	// Path is the expected location of the missing artifact.
	Path string
	// Hint is the user-facing message explaining what to do.
	Hint string
}

func (e *MissingPrerequisiteError) Error() string {
	return fmt.Sprintf("missing prerequisite: %s", e.Path)
}

// Step is one side effect in the install sequence.
type Step struct {
	Name string
	// BestEffort marks a step whose failure must not abort the run.
	BestEffort bool
	Run        func(ctx context.Context) error
}

// Procedure is a platform-specific install sequence.
type Procedure interface {
	Platform() string
	// Check verifies the precondition. A *MissingPrerequisiteError
	// means the artifact is not in place and nothing has been touched.
	Check(ctx context.Context) error
	// ReportMissing tells the user about a failed precondition on the
	// platform's native surface.
	ReportMissing(err *MissingPrerequisiteError)
	// Steps returns the side effects to run, in order.
	Steps() []Step
	// Launch starts the installed application. It runs exactly once,
	// only after every step has completed.
	Launch(ctx context.Context) error
	// Summary is the success text printed to the console. Empty means
	// print nothing.
	Summary() string
}

// Recorder receives run and step outcomes, typically backed by the
// install journal. Recorder failures are logged and dropped; they
// never affect the install.
type Recorder interface {
	BeginRun(platform string) (int64, error)
	RecordStep(runID int64, name, status, errText string) error
	FinishRun(runID int64, status, errText string) error
}

// Runner drives a Procedure through the install sequence.
type Runner struct {
	rec Recorder // may be nil
	out io.Writer
}

// NewRunner returns a Runner writing its success summary to out. A nil
// recorder disables journaling; a nil out defaults to stdout.
func NewRunner(rec Recorder, out io.Writer) *Runner {
	if out == nil {
		out = os.Stdout
	}
	return &Runner{rec: rec, out: out}
}

// Run executes proc. A failed precondition is reported through the
// procedure and returned with no side effects performed. Steps run in
// order and fail fast, except best-effort steps whose failures are
// logged and tolerated. There is no rollback of completed steps.
func (r *Runner) Run(ctx context.Context, proc Procedure) error {
	if err := proc.Check(ctx); err != nil {
		var missing *MissingPrerequisiteError
		if errors.As(err, &missing) {
			proc.ReportMissing(missing)
		}
		return err
	}

	runID := r.beginRun(proc.Platform())

	for _, step := range proc.Steps() {
		log.Debugf("running step %q", step.Name)
		err := step.Run(ctx)
		switch {
		case err == nil:
			r.recordStep(runID, step.Name, journal.StatusSucceeded, "")
		case step.BestEffort:
			log.Warnf("step %q failed, continuing: %v", step.Name, err)
			r.recordStep(runID, step.Name, journal.StatusIgnored, err.Error())
		default:
			r.recordStep(runID, step.Name, journal.StatusFailed, err.Error())
			r.finishRun(runID, journal.StatusFailed, err.Error())
			return fmt.Errorf("%s: %w", step.Name, err)
		}
	}

	if err := proc.Launch(ctx); err != nil {
		r.recordStep(runID, "launch", journal.StatusFailed, err.Error())
		r.finishRun(runID, journal.StatusFailed, err.Error())
		return fmt.Errorf("launch: %w", err)
	}
	r.recordStep(runID, "launch", journal.StatusSucceeded, "")
	r.finishRun(runID, journal.StatusSucceeded, "")

	if summary := proc.Summary(); summary != "" {
		fmt.Fprintln(r.out, summary)
	}
	return nil
}

func (r *Runner) beginRun(platform string) int64 {
	if r.rec == nil {
		return 0
	}
	id, err := r.rec.BeginRun(platform)
	if err != nil {
		log.Warnf("failed to record run start: %v", err)
		return 0
	}
	return id
}

func (r *Runner) recordStep(runID int64, name, status, errText string) {
	if r.rec == nil || runID == 0 {
		return
	}
	if err := r.rec.RecordStep(runID, name, status, errText); err != nil {
		log.Warnf("failed to record step %q: %v", name, err)
	}
}

func (r *Runner) finishRun(runID int64, status, errText string) {
	if r.rec == nil || runID == 0 {
		return
	}
	if err := r.rec.FinishRun(runID, status, errText); err != nil {
		log.Warnf("failed to record run result: %v", err)
	}
}
