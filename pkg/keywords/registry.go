package keywords

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/fsnotify.v1"
	"gopkg.in/yaml.v3"
)

// Registry holds keyword sets by strategy name. It is safe for concurrent
// use; a Watch-driven reload never disturbs in-flight lookups.
type Registry struct {
	mu       sync.RWMutex
	sets     map[string]*Set
	dir      string
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	onChange func(event string, set *Set)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sets: make(map[string]*Set),
	}
}

// NewRegistryWithDirectory creates a registry and loads every set from the
// directory.
func NewRegistryWithDirectory(dir string) (*Registry, error) {
	r := NewRegistry()
	if err := r.LoadDirectory(dir); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds or replaces the set for its strategy.
func (r *Registry) Register(set *Set) error {
	if set == nil {
		return fmt.Errorf("keyword set cannot be nil")
	}
	if err := set.Validate(); err != nil {
		return fmt.Errorf("invalid keyword set: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[set.Strategy] = set
	return nil
}

// Unregister removes the set for a strategy.
func (r *Registry) Unregister(strategy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sets[strategy]; !ok {
		return fmt.Errorf("keyword set %q not found", strategy)
	}
	delete(r.sets, strategy)
	return nil
}

// Get returns the keywords configured for a strategy. An unconfigured
// strategy yields nil, which disables its CanHandle check.
func (r *Registry) Get(strategy string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.sets[strategy]
	if !ok {
		return nil
	}
	keywords := make([]string, len(set.Keywords))
	copy(keywords, set.Keywords)
	return keywords
}

// List returns all registered sets.
func (r *Registry) List() []*Set {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sets := make([]*Set, 0, len(r.sets))
	for _, s := range r.sets {
		sets = append(sets, s)
	}
	return sets
}

// Count returns the number of registered sets.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sets)
}

// LoadDirectory loads every YAML keyword file from a directory. A missing
// directory is not an error; there is simply nothing to load.
func (r *Registry) LoadDirectory(dir string) error {
	r.dir = dir

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var loadErrors []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		if err := r.LoadFile(filepath.Join(dir, name)); err != nil {
			loadErrors = append(loadErrors, fmt.Sprintf("%s: %v", name, err))
		}
	}

	if len(loadErrors) > 0 {
		return fmt.Errorf("errors loading keyword sets: %s", strings.Join(loadErrors, "; "))
	}
	return nil
}

// LoadFile loads a single keyword set file.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	if err := r.Register(&set); err != nil {
		return fmt.Errorf("registering keyword set: %w", err)
	}
	return nil
}

// Reload clears the registry and reloads every set from the configured
// directory.
func (r *Registry) Reload() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for reload")
	}

	r.mu.Lock()
	r.sets = make(map[string]*Set)
	r.mu.Unlock()

	return r.LoadDirectory(r.dir)
}

// SetOnChange sets a callback invoked when a watched set changes.
func (r *Registry) SetOnChange(fn func(event string, set *Set)) {
	r.onChange = fn
}

// Watch starts watching the configured directory for keyword file changes.
func (r *Registry) Watch() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	r.watcher = watcher
	r.stopChan = make(chan struct{})

	go r.watchLoop()

	if err := watcher.Add(r.dir); err != nil {
		r.watcher.Close()
		return fmt.Errorf("watching directory %s: %w", r.dir, err)
	}
	return nil
}

// StopWatch stops watching the keyword directory.
func (r *Registry) StopWatch() {
	if r.stopChan != nil {
		close(r.stopChan)
		r.stopChan = nil
	}
	if r.watcher != nil {
		r.watcher.Close()
		r.watcher = nil
	}
}

// watchLoop handles file system events until stopped.
func (r *Registry) watchLoop() {
	for {
		select {
		case <-r.stopChan:
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
				continue
			}

			switch {
			case event.Op&fsnotify.Create == fsnotify.Create:
				r.handleFileChange(event.Name, "create")
			case event.Op&fsnotify.Write == fsnotify.Write:
				r.handleFileChange(event.Name, "modify")
			case event.Op&fsnotify.Remove == fsnotify.Remove,
				event.Op&fsnotify.Rename == fsnotify.Rename:
				// The strategy behind the removed file is unknown
				// without the file contents, so rebuild from disk.
				if err := r.Reload(); err == nil && r.onChange != nil {
					r.onChange("remove", nil)
				}
			}

		case _, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// handleFileChange reloads one changed file and notifies the callback.
func (r *Registry) handleFileChange(path, event string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return
	}
	if err := r.Register(&set); err != nil {
		return
	}

	if r.onChange != nil {
		r.onChange(event, &set)
	}
}
