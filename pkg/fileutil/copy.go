package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/hollowdeep/bootstrap/internal/errors"
)

// CopyFile copies src to dst, overwriting dst if it exists.
// The source file's permission bits are preserved, so a copied binary
// stays executable.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.Wrap(err, "stat source file")
	}
	if !info.Mode().IsRegular() {
		return errors.Newf("%s is not a regular file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "opening source file")
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Wrap(err, "creating destination file")
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrap(err, "copying file contents")
	}

	if err := out.Close(); err != nil {
		return errors.Wrap(err, "closing destination file")
	}

	// OpenFile only applies perm on create; an overwritten file keeps
	// its old mode otherwise.
	return errors.Wrap(os.Chmod(dst, info.Mode().Perm()), "setting destination permissions")
}

// CopyDir recursively copies the contents of src into dst, overwriting
// existing files. Directories are created as needed; dst itself is
// created if absent.
func CopyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return errors.Wrap(err, "walking source directory")
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return errors.Wrap(err, "computing relative path")
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return errors.Wrap(os.MkdirAll(target, 0755), "creating directory")
		}
		return CopyFile(path, target)
	})
}
