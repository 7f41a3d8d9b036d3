package content

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// ErrUnknownCharacter is returned for names not in the registry.
var ErrUnknownCharacter = errors.New("unknown character")

// Registry maps character names to factories. A reload replaces the whole
// set at once; factories handed out earlier stay valid.
type Registry struct {
	source FrameSource
	logger *zap.Logger

	mu        sync.RWMutex
	factories map[string]*CharacterFactory
}

func NewRegistry(source FrameSource, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		source:    source,
		logger:    logger,
		factories: make(map[string]*CharacterFactory),
	}
}

// Load reads every .yaml and .yml file in dir. Nothing changes unless all of
// them load.
func (r *Registry) Load(fsys fs.FS, dir string) error {
	var files []string
	for _, ext := range []string{"*.yaml", "*.yml"} {
		matches, err := fs.Glob(fsys, path.Join(dir, ext))
		if err != nil {
			return fmt.Errorf("content: glob %s: %w", dir, err)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return fmt.Errorf("content: no character files in %s", dir)
	}
	slices.Sort(files)

	factories := make(map[string]*CharacterFactory, len(files))
	for _, file := range files {
		def, err := LoadCharacter(fsys, file)
		if err != nil {
			return err
		}
		if _, dup := factories[def.Name]; dup {
			return fmt.Errorf("content: %s: %w: duplicate name %q", file, ErrInvalidDefinition, def.Name)
		}
		f, err := NewCharacterFactory(def, r.source)
		if err != nil {
			return fmt.Errorf("content: %s: %w", file, err)
		}
		factories[def.Name] = f
	}

	r.mu.Lock()
	r.factories = factories
	r.mu.Unlock()

	r.logger.Info("characters loaded",
		zap.String("dir", dir),
		zap.Strings("names", slices.Sorted(maps.Keys(factories))))
	return nil
}

func (r *Registry) Get(name string) (*CharacterFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("content: %w %q", ErrUnknownCharacter, name)
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}
