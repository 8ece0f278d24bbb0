//go:build !unix

package oscommand

import (
	"errors"
	"io/fs"
)

func imageErrorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return 127, true
	case errors.Is(err, fs.ErrPermission):
		return 126, true
	}
	return 0, false
}
