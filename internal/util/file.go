package util

import "os"

// EnsureDir creates the output directory if it does not exist yet.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
