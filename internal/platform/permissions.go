package platform

import (
	"io/fs"
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// KeepExecutable applies mode to path when it has any executable bit, so
// scripts copied from a template stay runnable whatever the umask stripped.
func KeepExecutable(path string, mode fs.FileMode) error {
	if mode&0o111 == 0 {
		return nil
	}
	return Chmod(path, mode.Perm())
}
