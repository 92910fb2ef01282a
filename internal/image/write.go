package image

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File is a named output artifact.
type File struct {
	Path string
	Data []byte
}

// rename moves files during the commit phase. Tests replace it to
// inject failures.
var rename = os.Rename

// WriteFiles writes every file or none of them.
//
// Each file is staged as a temporary file next to its destination. Existing
// destinations are then moved aside and the staged files renamed into
// place. If any step fails, the renamed files are removed and the previous
// destinations restored, so the directory is left as it was.
func WriteFiles(files ...File) error {
	c := &commit{
		files:   files,
		staged:  make([]string, len(files)),
		backups: make([]string, len(files)),
		placed:  make([]bool, len(files)),
	}

	for i, f := range files {
		tmp, err := stage(f)
		if err != nil {
			c.rollback()
			return err
		}
		c.staged[i] = tmp
	}

	if err := c.backup(); err != nil {
		c.rollback()
		return err
	}
	if err := c.place(); err != nil {
		c.rollback()
		return err
	}
	c.finish()
	return nil
}

// commit tracks the state of one WriteFiles call.
type commit struct {
	files   []File
	staged  []string // temporary file per destination, "" once renamed
	backups []string // previous destination contents, "" if there were none
	placed  []bool
}

// backup moves existing destinations aside.
func (c *commit) backup() error {
	for i, f := range c.files {
		dst := filepath.Clean(f.Path)
		info, err := os.Lstat(dst)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			continue
		case err != nil:
			return fmt.Errorf("image: stat %s: %w", f.Path, err)
		case info.IsDir():
			return fmt.Errorf("image: %s is a directory", f.Path)
		}

		bak := c.staged[i] + ".bak"
		if err := rename(dst, bak); err != nil {
			return fmt.Errorf("image: back up %s: %w", f.Path, err)
		}
		c.backups[i] = bak
	}
	return nil
}

// place renames the staged files to their destinations.
func (c *commit) place() error {
	for i, f := range c.files {
		if err := rename(c.staged[i], filepath.Clean(f.Path)); err != nil {
			return fmt.Errorf("image: rename %s: %w", f.Path, err)
		}
		c.staged[i] = ""
		c.placed[i] = true
	}
	return nil
}

// rollback removes everything this call created and restores backups.
func (c *commit) rollback() {
	for i, f := range c.files {
		dst := filepath.Clean(f.Path)
		if c.placed[i] {
			_ = os.Remove(dst)
		}
		if c.staged[i] != "" {
			_ = os.Remove(c.staged[i])
		}
		if c.backups[i] != "" {
			_ = os.Rename(c.backups[i], dst)
		}
	}
}

// finish drops the backups of a successful commit.
func (c *commit) finish() {
	for _, bak := range c.backups {
		if bak != "" {
			_ = os.Remove(bak)
		}
	}
}

// stage writes f.Data to a temporary file in the destination directory.
func stage(f File) (string, error) {
	dir := filepath.Dir(filepath.Clean(f.Path))
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("image: create file: %w", err)
	}
	name := tmp.Name()

	if _, err := tmp.Write(f.Data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return "", fmt.Errorf("image: write %s: %w", f.Path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return "", fmt.Errorf("image: sync %s: %w", f.Path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("image: close %s: %w", f.Path, err)
	}
	// CreateTemp uses 0600; outputs are regular artifacts.
	if err := os.Chmod(name, 0o644); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("image: chmod %s: %w", f.Path, err)
	}
	return name, nil
}
