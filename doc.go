// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package assettree loads a configuration file and every file it refers to
// into a single in-memory tree.
//
// Any string leaf of a structured config (YAML, JSON or TOML) which names an
// existing file is replaced by that file's content. Nested configs are
// resolved the same way, relative to their own directory, so a root config
// can pull in calibration matrices, images, NumPy arrays and CSV tables
// scattered across a filesystem.
//
// # Basic Usage
//
//	l := assettree.New(
//	    assettree.LogHandler(slog.NewJSONHandler(os.Stderr, nil)),
//	)
//
//	tree, err := l.ReadFile(ctx, "robot.yaml")
//	if err != nil {
//	    return err
//	}
//
//	var cfg struct {
//	    Camera struct {
//	        Intrinsics value.Array `config:"intrinsics"`
//	    } `config:"camera"`
//	}
//	err = assettree.Unmarshal(tree, &cfg)
//
// # File Kinds
//
// Files are classified by content first and extension second. Gzip, zstd,
// bzip2 and lz4 compressed files are decompressed transparently. A file
// which cannot be classified is not an error: a warning is logged and the
// path string itself is kept in the tree.
//
// # Caching
//
// Every fully resolved file is cached by its canonical path for the lifetime
// of the [Cache]. Values returned from the cache are shared, so callers must
// not mutate them.
//
// Any string equal to the name of an existing file is treated as a reference,
// even when it was meant as plain text.
package assettree
