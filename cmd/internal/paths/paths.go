// Package paths handles canonical absolute path resolution
// for the grades file handed to the editor.
package paths

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// maxLinkDepth caps symlink traversal so that link loops fail
// instead of recursing forever.
const maxLinkDepth = 255

// Resolve computes the canonical absolute form of path, resolving
// relative segments against the working directory and following any
// symbolic links. When the final path component does not exist yet the
// parent directory is still resolved and the base name joined back on,
// matching `readlink -f`; a trailing link whose target is missing is
// still followed to the target.
func Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not make %q absolute", path)
	}
	return resolve(abs, 0)
}

func resolve(abs string, depth int) (string, error) {
	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", errors.Wrapf(err, "could not resolve %q", abs)
	}
	// the final component may be a link pointing at a file that does
	// not exist yet, which still has to be followed
	if fi, lerr := os.Lstat(abs); lerr == nil && fi.Mode()&os.ModeSymlink != 0 {
		if depth >= maxLinkDepth {
			return "", errors.Errorf("too many levels of symbolic links in %q", abs)
		}
		target, lerr := os.Readlink(abs)
		if lerr != nil {
			return "", errors.Wrapf(lerr, "could not resolve %q", abs)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(abs), target)
		}
		return resolve(target, depth+1)
	}
	dir, base := filepath.Split(abs)
	resolved, err = filepath.EvalSymlinks(filepath.Clean(dir))
	if err != nil {
		return "", errors.Wrapf(err, "could not resolve %q", abs)
	}
	return filepath.Join(resolved, base), nil
}
