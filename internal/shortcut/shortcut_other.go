//go:build !windows

package shortcut

import "errors"

func create(Spec) error {
	return errors.New("shortcut: only supported on windows")
}
