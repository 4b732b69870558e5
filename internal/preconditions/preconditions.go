package preconditions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateDeckPath checks that a deck file exists, is readable and looks like YAML
func ValidateDeckPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access file %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	if !isYamlFile(path) {
		return fmt.Errorf("%s is not a deck file (must end in .yaml or .yml)", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read file %s: %w", path, err)
	}
	file.Close()

	return nil
}

func isYamlFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// ValidateOutputPath checks if the directory of the output path is writable
func ValidateOutputPath(path string) error {
	dir := filepath.Dir(path)

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory %s does not exist", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if info.Mode()&0200 == 0 {
		return fmt.Errorf("output directory %s is not writable", dir)
	}

	return nil
}
