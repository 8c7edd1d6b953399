package ltemplate

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/grindlemire/ltemplate/internal/debug"
	"github.com/grindlemire/ltemplate/internal/source"
)

// Loader compiles templates from a directory on first use and caches them.
// It is safe for concurrent use; concurrent loads of one name compile once.
type Loader struct {
	root string
	opts []Option
	cfg  config

	mu    sync.RWMutex
	cache map[string]*Template
	group singleflight.Group
}

// NewLoader creates a Loader for templates under root. Options apply to every
// template it compiles.
func NewLoader(root string, opts ...Option) (*Loader, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Loader{
		root:  root,
		opts:  opts,
		cfg:   cfg,
		cache: make(map[string]*Template),
	}, nil
}

// Load returns the template called name, the slash-separated path of the file
// under the root without its extension.
func (l *Loader) Load(name string) (*Template, error) {
	if t, ok := l.cached(name); ok {
		debug.Log("loader: cache hit %s", name)
		return t, nil
	}

	v, err, shared := l.group.Do(name, func() (any, error) {
		if t, ok := l.cached(name); ok {
			return t, nil
		}
		t, err := l.compile(name)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache[name] = t
		l.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	debug.Log("loader: loaded %s (shared=%v)", name, shared)
	return v.(*Template), nil
}

// Forget drops name from the cache so the next Load recompiles it.
func (l *Loader) Forget(name string) {
	l.mu.Lock()
	delete(l.cache, name)
	l.mu.Unlock()
}

// Reset empties the cache.
func (l *Loader) Reset() {
	l.mu.Lock()
	l.cache = make(map[string]*Template)
	l.mu.Unlock()
}

func (l *Loader) cached(name string) (*Template, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, ok := l.cache[name]
	return t, ok
}

func (l *Loader) compile(name string) (*Template, error) {
	path, err := l.path(name)
	if err != nil {
		return nil, err
	}
	f, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Compile(name, f.Bytes, l.opts...)
}

// path resolves a template name to a file, refusing names that leave the root.
func (l *Loader) path(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty template name")
	}
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("template name %q is outside the template root", name)
	}
	return filepath.Join(l.root, clean+l.cfg.ext), nil
}
