// Package storage persists uploaded specimen images on local disk and
// resolves serving paths without ever letting a request escape the upload
// root.
package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidPath is returned by Resolve for any requested path that is
// absolute, contains parent-directory segments, or otherwise escapes the
// upload root. The check is pure path algebra; the filesystem is never
// consulted for a rejected path.
var ErrInvalidPath = errors.New("invalid upload path")

// Uploads stores files under a single root directory.
type Uploads struct {
	root string
}

func NewUploads(root string) *Uploads { return &Uploads{root: root} }

// Save writes src to a freshly named file under the root and returns the
// stored name. The root is (re)created before every write: MkdirAll treats
// an existing directory as success, so concurrent first requests cannot race
// each other. O_EXCL makes an accidental name collision an error instead of
// a silent overwrite.
func (u *Uploads) Save(src io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(u.root, 0o755); err != nil {
		return "", err
	}
	name := NewFileName(originalName)
	dst, err := os.OpenFile(filepath.Join(u.root, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(filepath.Join(u.root, name))
		return "", err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(filepath.Join(u.root, name))
		return "", err
	}
	return name, nil
}

// Remove deletes a previously stored file. Used to clean up when the record
// insert fails after the file was already written.
func (u *Uploads) Remove(name string) error {
	full, err := u.Resolve(name)
	if err != nil {
		return err
	}
	return os.Remove(full)
}

// Resolve maps a requested file path to an absolute path confined to the
// upload root. Traversal segments and absolute paths are rejected before any
// filesystem access.
func (u *Uploads) Resolve(requested string) (string, error) {
	if requested == "" || strings.ContainsRune(requested, 0) {
		return "", ErrInvalidPath
	}
	// Windows-style separators are normalized so "..\" cannot sneak past the
	// segment check on any platform.
	clean := filepath.Clean(filepath.FromSlash(requested))
	// IsLocal rejects absolute paths and anything that climbs out via "..".
	if !filepath.IsLocal(clean) {
		return "", ErrInvalidPath
	}
	return filepath.Join(u.root, clean), nil
}

// NewFileName derives a collision-resistant stored name from the original
// filename, keeping only its extension. Timestamps are not good enough here:
// two uploads in the same tick would overwrite each other.
func NewFileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	return uuid.NewString() + ext
}
