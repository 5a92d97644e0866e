package scene

import (
	"fmt"
	"sort"
)

// Built-in scene names
const (
	Default    = "default"
	Random     = "random"
	SphereGrid = "spheregrid"
)

var builtins = map[string]func(seed uint64) *Description{
	Default:    func(uint64) *Description { return DefaultDescription() },
	Random:     RandomDescription,
	SphereGrid: func(uint64) *Description { return SphereGridDescription(10) },
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the description of a built-in scene. The seed only affects
// procedurally generated scenes.
func Describe(name string, seed uint64) (*Description, error) {
	describe, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q (available: %v)", name, Names())
	}
	return describe(seed), nil
}

// Create builds a built-in scene by name
func Create(name string, aspectRatio float64, seed uint64) (*Scene, error) {
	d, err := Describe(name, seed)
	if err != nil {
		return nil, err
	}
	return d.Build(aspectRatio)
}
