package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"glass-trio", "Glass Trio"},
		{"metal_row", "Metal Row"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()

	named := DefaultDescription()
	named.Name = "Zeta"
	if err := Save(filepath.Join(dir, "zeta.json"), named); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	unnamed := DefaultDescription()
	unnamed.Name = ""
	unnamed.Description = ""
	if err := Save(filepath.Join(dir, "glass-trio.json"), unnamed); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// Invalid and non-JSON files are ignored
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d: %+v", len(scenes), scenes)
	}

	// Sorted by name
	expected := []SceneInfo{
		{
			ID:       "file:glass-trio",
			Name:     "Glass Trio",
			Type:     "file",
			FilePath: filepath.Join(dir, "glass-trio.json"),
			Spheres:  4,
		},
		{
			ID:          "file:zeta",
			Name:        "Zeta",
			Description: named.Description,
			Type:        "file",
			FilePath:    filepath.Join(dir, "zeta.json"),
			Spheres:     4,
		},
	}
	for i := range expected {
		if scenes[i] != expected[i] {
			t.Errorf("Scene %d = %+v, want %+v", i, scenes[i], expected[i])
		}
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Errorf("ListSceneFiles() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	if err := Save(filepath.Join(dir, "extra.json"), DefaultDescription()); err != nil {
		t.Fatal(err)
	}

	scenes, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	expectedIDs := []string{Default, Random, SphereGrid, "file:extra"}
	if len(scenes) != len(expectedIDs) {
		t.Fatalf("Expected %d scenes, got %d", len(expectedIDs), len(scenes))
	}
	for i, id := range expectedIDs {
		if scenes[i].ID != id {
			t.Errorf("Scene %d ID = %q, want %q", i, scenes[i].ID, id)
		}
	}
	for _, s := range scenes[:3] {
		if s.Type != "builtin" || s.Spheres == 0 || s.Name == "" {
			t.Errorf("Unexpected built-in scene info %+v", s)
		}
	}
}
