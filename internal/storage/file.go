// Package storage provides Repository implementations for persisting
// packing lists: a YAML file on disk and an in-memory store for tests.
// All lists live under a single storage key (one file), wrapped in a
// versioned envelope so stored shapes can be migrated later.
package storage

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/constants"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/errors"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/packing"
)

// envelope is the on-disk shape of the persisted collection.
type envelope struct {
	SchemaVersion int                   `yaml:"schema_version"`
	Lists         []packing.PackingList `yaml:"lists"`
}

// File persists packing lists to a single YAML file.
type File struct {
	path string
}

// NewFile creates a file repository at the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

// DefaultPath returns the default storage location under the user's
// home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return constants.DefaultStorageFile
	}
	return filepath.Join(home, ".camppack", constants.DefaultStorageFile)
}

// Load reads the persisted collection. A missing file is an empty
// store, not an error.
func (f *File) Load() ([]packing.PackingList, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapIO("read", f.path, err)
	}

	var env envelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, errors.WrapParse("yaml", f.path, err)
	}
	return env.Lists, nil
}

// Save atomically replaces the persisted collection: the envelope is
// written to a temp file in the same directory and renamed over the
// target, so readers never observe a partial write.
func (f *File) Save(lists []packing.PackingList) error {
	data, err := yaml.Marshal(envelope{
		SchemaVersion: constants.StorageSchemaVersion,
		Lists:         lists,
	})
	if err != nil {
		return errors.WrapParse("yaml", f.path, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".packing-lists-*.yaml")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.WrapIO("write", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("close", tmpName, err)
	}
	if err := os.Chmod(tmpName, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("chmod", tmpName, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("rename", f.path, err)
	}
	return nil
}
