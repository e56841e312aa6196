package pathutil

import "path/filepath"

// Normalize converts all path separators in a relative path to forward
// slashes. Plan entries are stored slash-normalized so previews render the
// same on every platform.
func Normalize(p string) string {
	return filepath.ToSlash(p)
}

// Resolve joins a slash-normalized relative path onto an OS-native root.
func Resolve(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
