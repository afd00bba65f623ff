package languages

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rnglib/rng/internal/fileutil"
	"github.com/rnglib/rng/pkg/random"
	"github.com/rnglib/rng/pkg/rng"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultCacheSize = 32

var ErrUnknownLanguage = errors.New("unknown language")

// SourceError reports a language whose data could not be read.
type SourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s (path=%s): %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// source yields the raw bytes of one language.
type source struct {
	name string
	path string // empty for in-memory data
	read func() ([]byte, error)
}

// Registry maps language names to their data and caches parsed generators.
// Names are matched case-insensitively.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]source // lowercase name -> source
	cache   *lru.Cache[string, *rng.Generator]
	logger  *slog.Logger
}

type Option func(*registryConfig)

type registryConfig struct {
	cacheSize int
	logger    *slog.Logger
}

func WithCacheSize(n int) Option {
	return func(c *registryConfig) {
		if n > 0 {
			c.cacheSize = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *registryConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...Option) (*Registry, error) {
	cfg := registryConfig{
		cacheSize: DefaultCacheSize,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cache, err := lru.New[string, *rng.Generator](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create language cache: %w", err)
	}

	return &Registry{
		sources: make(map[string]source),
		cache:   cache,
		logger:  cfg.logger,
	}, nil
}

// NewDefaultRegistry creates a registry with all embedded languages
func NewDefaultRegistry(opts ...Option) (*Registry, error) {
	r, err := NewRegistry(opts...)
	if err != nil {
		return nil, err
	}
	for _, name := range Embedded() {
		r.add(source{
			name: name,
			read: func() ([]byte, error) { return embeddedBytes(name) },
		})
	}
	return r, nil
}

// Register adds a language backed by in-memory data, replacing any language
// with the same name.
func (r *Registry) Register(name string, data []byte) {
	buf := append([]byte(nil), data...)
	r.add(source{
		name: name,
		read: func() ([]byte, error) { return buf, nil },
	})
}

// RegisterFile adds the language stored at path. Its name is the file name
// without extension. The file is read on every Load so edits are picked up.
func (r *Registry) RegisterFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &SourceError{Op: "languages.register_file", Path: path, Err: err}
	}
	name := NameFromPath(abs)
	if name == "" {
		return "", &SourceError{Op: "languages.register_file", Path: path, Err: errors.New("empty language name")}
	}
	r.add(source{
		name: name,
		path: abs,
		read: func() ([]byte, error) { return os.ReadFile(abs) },
	})
	return name, nil
}

// RegisterDir adds every *.txt file in dir and returns the names added.
func (r *Registry) RegisterDir(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, &SourceError{Op: "languages.register_dir", Path: dir, Err: err}
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, &SourceError{Op: "languages.register_dir", Path: dir, Err: err}
	}

	sort.Strings(paths)
	names := make([]string, 0, len(paths))
	for _, path := range paths {
		name, err := r.RegisterFile(path)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	r.logger.Debug("registered language directory", "dir", dir, "languages", names)
	return names, nil
}

func (r *Registry) add(s source) {
	r.mu.Lock()
	r.sources[strings.ToLower(s.name)] = s
	r.mu.Unlock()
}

func (r *Registry) lookup(name string) (source, error) {
	r.mu.RLock()
	s, ok := r.sources[strings.ToLower(strings.TrimSpace(name))]
	r.mu.RUnlock()
	if !ok {
		return source{}, fmt.Errorf("%w %q (supported: %s)", ErrUnknownLanguage, name, strings.Join(r.Names(), ", "))
	}
	return s, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, err := r.lookup(name)
	return err == nil
}

// Names returns the registered language names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.sources))
	for _, s := range r.sources {
		names = append(names, s.name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Path returns the file backing name, or "" for embedded and in-memory data.
func (r *Registry) Path(name string) (string, error) {
	s, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	return s.path, nil
}

// Bytes returns the raw language data for name.
func (r *Registry) Bytes(name string) ([]byte, error) {
	s, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	data, err := s.read()
	if err != nil {
		return nil, &SourceError{Op: "languages.read", Path: s.path, Err: err}
	}
	return data, nil
}

// Load returns the generator for name. Generators are cached by name and
// content hash. An invalid language is returned together with an
// *rng.InvalidLanguageError.
func (r *Registry) Load(name string) (*rng.Generator, error) {
	s, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	data, err := s.read()
	if err != nil {
		return nil, &SourceError{Op: "languages.read", Path: s.path, Err: err}
	}

	key := strings.ToLower(s.name) + ":" + fileutil.HashBytes(data)
	g, ok := r.cache.Get(key)
	if ok {
		r.logger.Debug("language served from cache", "language", s.name)
	} else {
		lines, err := ParseLines(data)
		if err != nil {
			return nil, &SourceError{Op: "languages.parse", Path: s.path, Err: err}
		}
		g = rng.Load(s.name, lines)
		r.cache.Add(key, g)
		r.logger.Debug("language loaded",
			"language", s.name,
			"prefixes", g.Prefixes.Len(),
			"centers", g.Centers.Len(),
			"suffixes", g.Suffixes.Len(),
		)
		if len(g.InvalidLines) > 0 {
			r.logger.Warn("language has invalid lines", "language", s.name, "count", len(g.InvalidLines))
		}
	}

	if !g.IsValid() {
		return g, &rng.InvalidLanguageError{Generator: g}
	}
	return g, nil
}

// LoadFile registers path and loads it.
func (r *Registry) LoadFile(path string) (*rng.Generator, error) {
	name, err := r.RegisterFile(path)
	if err != nil {
		return nil, err
	}
	return r.Load(name)
}

// Random picks one registered language name uniformly.
func (r *Registry) Random(src random.Source) (string, error) {
	names := r.Names()
	if len(names) == 0 {
		return "", fmt.Errorf("%w: registry is empty", ErrUnknownLanguage)
	}
	return names[random.OrDefault(src).IntN(len(names))], nil
}

// NameFromPath derives a language name from a file path: "dir/elven.txt" is
// "Elven".
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return cases.Title(language.Und, cases.NoLower).String(strings.TrimSuffix(base, filepath.Ext(base)))
}
