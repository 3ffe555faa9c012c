package minutes

import (
	"fmt"
	"os"
	"path/filepath"
)

func partialPath(dir string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("teil_%02d.md", index))
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

func writeText(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := ensureDir(dir); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(text), 0644)
}
