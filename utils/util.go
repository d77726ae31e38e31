package utils

import (
	"os"
)

// IsRegular reports whether fpath is a regular file, symlinks followed
func IsRegular(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsRegular()
}
