package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"prsetup/internal/finisher"
	"prsetup/internal/journal"
	"prsetup/internal/logging"
	"prsetup/internal/paths"
)

const version = "1.0.0"

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "prsetup",
	Short: "Finish a PhotoResize installation",
	Long: `prsetup runs the final installation steps for PhotoResize.

On macOS it verifies PhotoResize.app is in the Applications folder,
clears the quarantine attribute, and opens the app. On Windows it
copies PhotoResize.exe into Program Files, clears the download mark,
creates a Start Menu shortcut, and launches the installed executable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		logging.Init(debugFlag)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runInstall(cmd)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show recent finisher runs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runStatus(cmd)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(*cobra.Command, []string) {
		fmt.Printf("prsetup v%s\n", version)
		fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.AddCommand(statusCmd, versionCmd)
}

func journalPath() string {
	return filepath.Join(paths.DataDir("PhotoResize"), "setup.db")
}

func runInstall(cmd *cobra.Command) error {
	opts := finisher.DefaultOptions()
	opts.Version = version

	proc, err := finisher.NewProcedure(opts)
	if err != nil {
		return err
	}

	// The journal is best-effort: run without it rather than fail.
	var rec finisher.Recorder
	if j, err := journal.Open(journalPath()); err != nil {
		log.Warnf("install journal unavailable: %v", err)
	} else {
		defer j.Close()
		rec = j
	}

	return finisher.NewRunner(rec, cmd.OutOrStdout()).Run(cmd.Context(), proc)
}

func runStatus(cmd *cobra.Command) error {
	j, err := journal.Open(journalPath())
	if err != nil {
		return fmt.Errorf("failed to open install journal: %w", err)
	}
	defer j.Close()

	runs, err := j.RecentRuns(5)
	if err != nil {
		return fmt.Errorf("failed to read install journal: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No finisher runs recorded.")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, run := range runs {
		fmt.Fprintf(out, "run %d  %s  %s  %s\n",
			run.ID, run.Platform, run.Status, run.StartedAt.Format(time.RFC3339))
		steps, err := j.RunSteps(run.ID)
		if err != nil {
			return err
		}
		for _, step := range steps {
			line := fmt.Sprintf("  %-9s  %s", step.Status, step.Name)
			if step.Error != "" {
				line += ": " + step.Error
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Missing prerequisites are already reported on the platform's
		// native surface (alert dialog or console).
		var missing *finisher.MissingPrerequisiteError
		if !errors.As(err, &missing) {
			log.Error(err)
		}
		os.Exit(1)
	}
}
