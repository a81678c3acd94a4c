// Package registry provides a global registry for demo factories.
// Demos register themselves in init() functions, allowing the platform
// to discover and build demos without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/scenekit/internal/scene"
	"github.com/vovakirdan/scenekit/internal/storage"
)

// ErrUnknownDemo is returned for IDs nobody registered.
var ErrUnknownDemo = errors.New("registry: unknown demo")

// ScoreStore persists finished runs. *storage.Store implements it.
type ScoreStore interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
	HighScore(demoID string) (int, error)
}

// Options are the per-run settings the platform passes to a demo.
type Options struct {
	ConfigPath string // custom YAML path; empty uses the search order
	Difficulty string // preset name; empty selects normal
	FrameRate  int    // overrides the configured rate when positive
	Seed       int64
	Player     string     // recorded with saved scores
	Scores     ScoreStore // nil disables score keeping
}

// Demo is a self-contained set of scenes built on the kernel.
type Demo interface {
	// ID returns a unique identifier for this demo (e.g., "bounce").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Build adds the demo's scenes to g and selects the first one.
	// The scenes draw on g's context, which is already sized.
	Build(g *scene.Game, opts Options) error
}

// Tunable is implemented by demos that honor Options.Difficulty.
type Tunable interface {
	Tunable() bool
}

// DemoInfo contains metadata about a registered demo.
type DemoInfo struct {
	ID      string
	Title   string
	Tunable bool // offers difficulty presets
}

// Factory creates a new instance of a demo.
type Factory func() Demo

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]DemoInfo)
	mu        sync.RWMutex
)

// Register adds a demo factory to the registry.
// Typically called from a demo's init() function.
// Panics if a demo with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", id))
	}

	d := f()
	info := DemoInfo{ID: id, Title: d.Title()}
	if t, ok := d.(Tunable); ok {
		info.Tunable = t.Tunable()
	}
	factories[id] = f
	infos[id] = info
}

// List returns information about all registered demos, sorted by ID.
func List() []DemoInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DemoInfo, 0, len(factories))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new demo by its ID.
func Create(id string) (Demo, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownDemo, id)
	}
	return f(), nil
}

// Info returns the metadata of a registered demo.
func Info(id string) (DemoInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Build creates the demo and builds it onto g.
func Build(id string, g *scene.Game, opts Options) (Demo, error) {
	d, err := Create(id)
	if err != nil {
		return nil, err
	}
	if err := d.Build(g, opts); err != nil {
		return nil, fmt.Errorf("registry: build %s: %w", id, err)
	}
	return d, nil
}
