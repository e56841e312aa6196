package planner

import (
	"errors"
	"os"
	"path"
	"path/filepath"
)

// errStopWalk signals an early, non-error exit from walkFiles.
var errStopWalk = errors.New("stop walk")

// walkFiles visits every file under root in directory-then-filename order:
// all files of a directory (name-sorted) before any of its subdirectories
// (name-sorted), recursively. relDir is the slash-normalized directory path
// relative to root, "" for the root itself. The visit function may return
// errStopWalk to end the walk early without an error.
func walkFiles(root string, visit func(relDir, name string) error) error {
	err := walkDir(root, "", visit)
	if err == errStopWalk {
		return nil
	}
	return err
}

func walkDir(dir, relDir string, visit func(relDir, name string) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
			continue
		}
		if err := visit(relDir, entry.Name()); err != nil {
			return err
		}
	}

	for _, sub := range subdirs {
		if err := walkDir(filepath.Join(dir, sub), path.Join(relDir, sub), visit); err != nil {
			return err
		}
	}
	return nil
}
