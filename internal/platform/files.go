package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	OSWindows = "windows"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// go run builds into a throwaway directory under the OS temp dir
const goBuildDirPrefix = "go-build"

// AppDir returns the directory holding the running executable. When the
// binary was produced by "go run" the working directory is returned instead,
// so bundled assets next to the sources are still found.
func AppDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return os.Getwd()
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	dir := filepath.Dir(exe)
	if strings.Contains(dir, goBuildDirPrefix) && strings.HasPrefix(dir, os.TempDir()) {
		return os.Getwd()
	}
	return dir, nil
}

// ResolvePath returns path unchanged when absolute, otherwise joined onto base
func ResolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// ExecutableName appends the platform executable suffix to name
func ExecutableName(name string) string {
	if runtime.GOOS == OSWindows && filepath.Ext(name) == "" {
		return name + ".exe"
	}
	return name
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// NewScratchDir creates base/name for the intermediate files of one download
func NewScratchDir(base, name string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("scratch base directory is empty")
	}
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid scratch directory name: %q", name)
	}

	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}
	return dir, nil
}

// RemoveScratchDir deletes a directory created by NewScratchDir. It refuses to
// delete anything that is not strictly inside base.
func RemoveScratchDir(base, dir string) error {
	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return fmt.Errorf("failed to relate scratch directory to %s: %w", base, err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return fmt.Errorf("refusing to remove %s: not inside %s", dir, base)
	}
	return os.RemoveAll(dir)
}
