package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mandeepsmagh/lehar-magazine/scaffold"
)

// runInit writes the starter metadata document and page template into the
// current directory. Existing files are left alone unless force is set.
func runInit(force bool) error {
	root := "templates"

	return fs.WalkDir(scaffold.Files, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if !force {
			if _, err := os.Stat(relPath); err == nil {
				fmt.Printf("Skipping %s (already exists, use -force to overwrite)\n", relPath)
				return nil
			}
		}

		content, err := scaffold.Files.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if dir := filepath.Dir(relPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(relPath, content, 0o644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", relPath)
		return nil
	})
}
