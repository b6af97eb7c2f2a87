// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package fsys abstracts the filesystem operations the loader depends on.
package fsys

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FS is the set of filesystem operations needed to resolve and read files.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	EvalSymlinks(name string) (string, error)
	Getwd() (string, error)
	UserHomeDir() (string, error)
}

// OS implements FS with the host filesystem.
type OS struct{}

// Stat implements the FS interface.
func (OS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile implements the FS interface.
func (OS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// EvalSymlinks implements the FS interface.
func (OS) EvalSymlinks(name string) (string, error) {
	return filepath.EvalSymlinks(name)
}

// Getwd implements the FS interface.
func (OS) Getwd() (string, error) {
	return os.Getwd()
}

// UserHomeDir implements the FS interface.
func (OS) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}
