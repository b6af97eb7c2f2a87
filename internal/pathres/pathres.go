// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package pathres decides whether a string refers to an existing file.
package pathres

import (
	"path/filepath"
	"strings"

	"github.com/z5labs/assettree/internal/fsys"
)

// Resolve reports the canonical path of the regular file candidate refers
// to, if any. A leading ~ is expanded to the user's home directory. The
// expanded candidate is tried first if it is absolute, then candidate
// joined onto base, then candidate joined onto each of the search
// directories in order. Not finding a file is not an error.
func Resolve(fs fsys.FS, candidate, base string, search ...string) (string, bool) {
	if candidate == "" {
		return "", false
	}

	expanded := expandHome(fs, candidate)
	if filepath.IsAbs(expanded) {
		if p, ok := canonical(fs, expanded); ok {
			return p, true
		}
	}
	if filepath.IsAbs(candidate) {
		return "", false
	}

	for _, dir := range append([]string{base}, search...) {
		if dir == "" {
			continue
		}
		if p, ok := canonical(fs, filepath.Join(dir, candidate)); ok {
			return p, true
		}
	}
	return "", false
}

func expandHome(fs fsys.FS, p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := fs.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	return filepath.Join(home, p[1:])
}

// canonical returns the absolute, symlink free form of p if it names an
// existing regular file.
func canonical(fs fsys.FS, p string) (string, bool) {
	info, err := fs.Stat(p)
	if err != nil || info.IsDir() {
		return "", false
	}

	real, err := fs.EvalSymlinks(p)
	if err != nil {
		return "", false
	}
	if filepath.IsAbs(real) {
		return filepath.Clean(real), true
	}

	wd, err := fs.Getwd()
	if err != nil {
		return "", false
	}
	return filepath.Join(wd, real), true
}
