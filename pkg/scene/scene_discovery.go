package scene

import (
	"fmt"
	"sort"
)

// DefaultCoverSeed fixes the random sphere layout of the cover scene
const DefaultCoverSeed = 42

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string // Identifier used on the command line
	Description string
	build       func() (*Scene, error)
}

var builtInScenes = []SceneInfo{
	{
		Name:        "basic",
		Description: "Diffuse sphere on a diffuse ground sphere",
		build: func() (*Scene, error) {
			return NewBasicScene(), nil
		},
	},
	{
		Name:        "materials",
		Description: "Glass bubble, diffuse and fuzzy metal spheres with depth of field",
		build: func() (*Scene, error) {
			return NewMaterialsScene()
		},
	},
	{
		Name:        "cover",
		Description: "Field of random small spheres around three large ones",
		build: func() (*Scene, error) {
			return NewCoverScene(DefaultCoverSeed)
		},
	},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtInScenes))
	copy(scenes, builtInScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Names returns the names of the built-in scenes, sorted
func Names() []string {
	var names []string
	for _, info := range ListScenes() {
		names = append(names, info.Name)
	}
	return names
}

// New builds the built-in scene with the given name
func New(name string) (*Scene, error) {
	for _, info := range builtInScenes {
		if info.Name == name {
			return info.build()
		}
	}
	return nil, fmt.Errorf("unknown scene: %q (available: %v)", name, Names())
}
