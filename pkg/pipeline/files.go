package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// RoleReadme marks the document file in a Generate batch.
const RoleReadme = "readme"

// File is one artifact to write.
type File struct {
	Role string // readme.RoleChart, readme.RoleLegend, RoleReadme, or "classes"/"source"
	Path string
	Data []byte
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place.
func WriteFileAtomic(path string, data []byte) error {
	tmp, err := stage(path, data)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteFiles writes every file or none of them. All files are first staged
// as temporaries. Existing targets are moved aside before each rename and
// put back if a later rename fails, so a failed batch leaves every target
// as it was.
func WriteFiles(files []File) error {
	staged := make([]string, 0, len(files))
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}

	for _, f := range files {
		tmp, err := stage(f.Path, f.Data)
		if err != nil {
			cleanup()
			return err
		}
		staged = append(staged, tmp)
	}

	// backups[i] is "" when files[i] did not exist before.
	backups := make([]string, 0, len(files))
	rollback := func() {
		for i := len(backups) - 1; i >= 0; i-- {
			if backups[i] == "" {
				os.Remove(files[i].Path)
			} else {
				os.Rename(backups[i], files[i].Path)
			}
		}
		cleanup()
	}

	for i, f := range files {
		bak, err := moveAside(f.Path)
		if err != nil {
			rollback()
			return err
		}
		if err := os.Rename(staged[i], f.Path); err != nil {
			if bak != "" {
				os.Rename(bak, f.Path)
			}
			rollback()
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
		backups = append(backups, bak)
	}

	for _, bak := range backups {
		if bak != "" {
			os.Remove(bak)
		}
	}
	return nil
}

// moveAside renames an existing file at path to a backup next to it and
// returns the backup path, or "" if there is nothing at path.
func moveAside(path string) (string, error) {
	if _, err := os.Lstat(path); os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	bak, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".bak.*")
	if err != nil {
		return "", fmt.Errorf("back up %s: %w", path, err)
	}
	bak.Close()
	if err := os.Rename(path, bak.Name()); err != nil {
		os.Remove(bak.Name())
		return "", fmt.Errorf("back up %s: %w", path, err)
	}
	return bak.Name(), nil
}

func stage(path string, data []byte) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return tmp.Name(), nil
}
