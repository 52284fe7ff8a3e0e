//go:build !darwin && !windows

package finisher

import (
	"fmt"
	"runtime"
)

// NewProcedure reports that the finisher only ships for the platforms
// PhotoResize ships for.
func NewProcedure(Options) (Procedure, error) {
	return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
}
