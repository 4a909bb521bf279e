// Package fsio wraps the small synchronous file surface liquihost needs
// (exists, read text, write text) over a billy.Filesystem, so production
// code runs on the OS filesystem and tests run in memory.
package fsio

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
)

// Exists reports whether path names an existing file or directory.
func Exists(fs billy.Filesystem, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// ReadText reads the whole file at path as a string.
func ReadText(fs billy.Filesystem, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText writes text to path, creating parent directories as needed
// and truncating any existing file.
func WriteText(fs billy.Filesystem, path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write([]byte(text)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Remove deletes path. A missing file is not an error.
func Remove(fs billy.Filesystem, path string) error {
	err := fs.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
