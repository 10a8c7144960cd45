package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindRoot walks upwards from startDir looking for a vault: a directory
// holding either the ".tagnote" system directory or a "tags.yaml" registry.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for dir := abs; ; dir = filepath.Dir(dir) {
		if hasFile(dir, ".tagnote") || hasFile(dir, "tags.yaml") {
			return dir, nil
		}
		if filepath.Dir(dir) == dir {
			break
		}
	}
	return "", fmt.Errorf("no vault found above %s", abs)
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

// ResolveVaultPath returns userPath, or a namespaced directory under the
// system temp dir when forceTemp is set. Paths already inside the temp dir
// are trusted as they are.
func ResolveVaultPath(userPath string, forceTemp bool) string {
	if userPath == "" {
		userPath = "."
	}
	if !forceTemp {
		return userPath
	}

	clean := filepath.Clean(userPath)
	if abs, err := filepath.Abs(clean); err == nil {
		if rel, err := filepath.Rel(os.TempDir(), abs); err == nil && !strings.HasPrefix(rel, "..") {
			return clean
		}
	}

	name := filepath.Base(clean)
	if name == "." || name == string(filepath.Separator) {
		name = "default"
	}
	return filepath.Join(os.TempDir(), "tagnote-dev", name)
}
