package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, usable with -scene
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the JSON file (file type only)
	Spheres     int    `json:"spheres"`     // Number of spheres
}

// ListSceneFiles scans dir for JSON scene descriptions. A missing directory
// yields an empty list. Files that fail to load are skipped with a warning.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scene: scan %s: %w", dir, err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		d, err := Load(filePath)
		if err != nil {
			fmt.Printf("Warning: skipping %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, fileSceneInfo(filePath, d))
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// fileSceneInfo builds metadata for a scene file, falling back to the file name
func fileSceneInfo(filePath string, d *Description) SceneInfo {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	name := d.Name
	if name == "" {
		name = titleCase(nameWithoutExt)
	}

	return SceneInfo{
		ID:          "file:" + nameWithoutExt,
		Name:        name,
		Description: d.Description,
		Type:        "file",
		FilePath:    filePath,
		Spheres:     len(d.Spheres),
	}
}

// ListAllScenes returns the built-in scenes followed by the scene files found in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	var all []SceneInfo
	for _, name := range Names() {
		d, err := Describe(name, 0)
		if err != nil {
			return nil, err
		}
		all = append(all, SceneInfo{
			ID:          name,
			Name:        d.Name,
			Description: d.Description,
			Type:        "builtin",
			Spheres:     len(d.Spheres),
		})
	}

	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, err
	}

	return append(all, files...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "glass-trio" -> "Glass Trio"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
