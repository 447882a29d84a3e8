// Package assets locates the asset tree and parses OBJ/MTL model files.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// sentinelDir marks the asset root.
const sentinelDir = "OBJ_Models"

// FindRoot walks upward from the working directory, then from the
// executable's directory, until it finds a directory containing OBJ_Models.
func FindRoot() (string, error) {
	if wd, err := os.Getwd(); err == nil {
		if root, ok := searchUp(wd); ok {
			return root, nil
		}
	}

	if exe, err := os.Executable(); err == nil {
		if root, ok := searchUp(filepath.Dir(exe)); ok {
			return root, nil
		}
	}

	return "", fmt.Errorf("asset root not found: no %s directory above the working or executable directory", sentinelDir)
}

func searchUp(start string) (string, bool) {
	dir := start
	for {
		if info, err := os.Stat(filepath.Join(dir, sentinelDir)); err == nil && info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ModelPath returns the path of a model's OBJ file inside the asset tree:
// <root>/OBJ_Models/<name>/<name>.obj.
func ModelPath(root, name string) string {
	return filepath.Join(root, sentinelDir, name, name+".obj")
}

// SkyboxFaces returns the six cubemap face paths for a named skybox in the
// GL order +X, -X, +Y, -Y, +Z, -Z.
func SkyboxFaces(root, name string) [6]string {
	dir := filepath.Join(root, "Skyboxes", name)
	return [6]string{
		filepath.Join(dir, "right.png"),
		filepath.Join(dir, "left.png"),
		filepath.Join(dir, "top.png"),
		filepath.Join(dir, "bottom.png"),
		filepath.Join(dir, "front.png"),
		filepath.Join(dir, "back.png"),
	}
}
