package x_guess

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Save writes the tree to path, replacing the file only once the new content
// is fully written.
func (t *Tree) Save(path string) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	// CreateTemp makes the file 0600; keep the mode of the file being replaced.
	mode := fs.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := t.Encode(tmp); err != nil {
		tmp.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

// Load reads a tree from path.
func Load(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	return Decode(f, path)
}

// LoadOrSeed loads path, or seeds a single-leaf tree when path is empty or
// does not exist. seeded reports which one happened.
func LoadOrSeed(path, placeholder string) (tree *Tree, seeded bool, err error) {
	if path == "" {
		return New(placeholder), true, nil
	}
	tree, err = Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(placeholder), true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return tree, false, nil
}
