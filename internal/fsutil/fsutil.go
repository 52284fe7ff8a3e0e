// Package fsutil holds the small filesystem helpers the finisher needs.
package fsutil

import (
	"fmt"
	"io"
	"os"
)

// CopyFile copies src to dst, replacing dst if it already exists. The
// source file mode is carried over so executables stay executable.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("unable to stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("unable to copy to %s: %w", dst, err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("unable to sync %s: %w", dst, err)
	}

	// O_TRUNC keeps the old mode on an overwritten file.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("unable to set mode on %s: %w", dst, err)
	}

	return nil
}
