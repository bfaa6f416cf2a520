// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"io"
	"os"
	"path/filepath"
)

// TEMP_SUFFIX names the scratch file a listing is written to before it
// replaces its destination.
const TEMP_SUFFIX = ".tmp"

// CreateFS defines the write side of a file system, as needed to replace
// a listing file in a single step.
type CreateFS interface {
	// Create creates or truncates a file for writing.
	Create(name string) (file io.WriteCloser, err error)
	// Rename atomically replaces newname with oldname.
	Rename(oldname, newname string) (err error)
	// Remove deletes a file.
	Remove(name string) (err error)
}

// DirFS is a CreateFS rooted at a host directory.
type DirFS string

var _ CreateFS = DirFS("")

func (dir DirFS) path(name string) string {
	return filepath.Join(string(dir), name)
}

func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	return os.Create(dir.path(name))
}

func (dir DirFS) Rename(oldname, newname string) (err error) {
	return os.Rename(dir.path(oldname), dir.path(newname))
}

func (dir DirFS) Remove(name string) (err error) {
	return os.Remove(dir.path(name))
}

// Marshal writes the listing to name. The listing goes to a scratch file
// first, and name is only replaced once the whole listing is written; on
// failure the scratch file is removed and name is untouched.
func (img *Image) Marshal(filesys CreateFS, name string) (err error) {
	tmp := name + TEMP_SUFFIX

	file, err := filesys.Create(tmp)
	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			filesys.Remove(tmp)
		}
	}()

	_, err = img.WriteTo(file)
	cerr := file.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		return
	}

	err = filesys.Rename(tmp, name)
	return
}
