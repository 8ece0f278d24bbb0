//go:build unix

package oscommand

import (
	"errors"

	"golang.org/x/sys/unix"
)

// imageErrorStatus maps exec(2) failures to the shell exit status for the stage.
func imageErrorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, unix.ENOENT),
		errors.Is(err, unix.ENOTDIR),
		errors.Is(err, unix.ELOOP),
		errors.Is(err, unix.ENAMETOOLONG):
		return 127, true
	case errors.Is(err, unix.EACCES),
		errors.Is(err, unix.EPERM),
		errors.Is(err, unix.ENOEXEC),
		errors.Is(err, unix.EISDIR),
		errors.Is(err, unix.ETXTBSY),
		errors.Is(err, unix.E2BIG):
		return 126, true
	}
	return 0, false
}
