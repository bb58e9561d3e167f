package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for default/set/asset files.
type Paths struct {
	BaseDir string // base directory, e.g., /opt/chip-duel/assets
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "catalog", "default.yaml")
}
func (p Paths) SetPath(set string) string {
	return filepath.Join(p.BaseDir, "catalog", "sets", set+".yaml")
}
func (p Paths) CatalogFile(name string) string {
	return filepath.Join(p.BaseDir, "catalog", name)
}
func (p Paths) AssetPath(rel string) string {
	return filepath.Join(p.BaseDir, rel)
}

// Loader reads catalog files and merges default → set.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawCatalog // key: set name, "" for default only
}

// NewLoader creates a catalog loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawCatalog),
	}
}

// Paths returns the layout the loader reads from.
func (l *Loader) Paths() Paths { return l.paths }

// WatchedFiles lists the files whose changes should invalidate the cache.
func (l *Loader) WatchedFiles(set string) []string {
	files := []string{l.paths.DefaultPath()}
	if set != "" {
		files = append(files, l.paths.SetPath(set))
	}
	l.mu.RLock()
	if cfg, ok := l.cache[set]; ok && cfg.CharactersFile != "" {
		files = append(files, l.paths.CatalogFile(cfg.CharactersFile))
	}
	l.mu.RUnlock()
	return files
}

// LoadMerged loads and merges default → set (set optional) and inlines the
// characters file if the merged catalog points at one. It returns
// ErrCatalogUnavailable when neither file exists.
func (l *Loader) LoadMerged(set string) (RawCatalog, error) {
	l.mu.RLock()
	if cfg, ok := l.cache[set]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, defFound, err := readCatalog(l.paths.DefaultPath())
	if err != nil {
		return RawCatalog{}, fmt.Errorf("read default: %w", err)
	}
	var setCfg RawCatalog
	setFound := false
	if set != "" {
		setCfg, setFound, err = readCatalog(l.paths.SetPath(set))
		if err != nil {
			return RawCatalog{}, fmt.Errorf("read set %q: %w", set, err)
		}
	}
	if !defFound && !setFound {
		return RawCatalog{}, ErrCatalogUnavailable
	}

	merged := mergeRaw(defCfg, setCfg)
	if len(merged.Characters) == 0 && merged.CharactersFile != "" {
		chars, found, err := readCatalog(l.paths.CatalogFile(merged.CharactersFile))
		if err != nil {
			return RawCatalog{}, fmt.Errorf("read characters: %w", err)
		}
		if !found {
			return RawCatalog{}, fmt.Errorf("characters file %s: %w", merged.CharactersFile, ErrCatalogUnavailable)
		}
		merged.Characters = chars.Characters
	}

	l.mu.Lock()
	l.cache[set] = merged
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears loader's cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawCatalog)
}

// readCatalog loads a YAML or JSON file. A top-level sequence is read as a bare
// character list. Missing files return a zero catalog and found=false.
func readCatalog(path string) (RawCatalog, bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawCatalog{}, false, nil
		}
		return RawCatalog{}, false, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return RawCatalog{}, true, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return RawCatalog{}, true, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		var chars []RawCharacter
		if err := root.Decode(&chars); err != nil {
			return RawCatalog{}, true, fmt.Errorf("decode %s: %w", path, err)
		}
		return RawCatalog{Characters: chars}, true, nil
	}
	var cfg RawCatalog
	if err := root.Decode(&cfg); err != nil {
		return RawCatalog{}, true, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, true, nil
}

// mergeRaw overlays 'b' on 'a' where b is non-empty.
// Characters are replaced as a whole, never appended.
func mergeRaw(a, b RawCatalog) RawCatalog {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}
	if b.CardBack != "" {
		out.CardBack = b.CardBack
	}

	// sounds
	if b.Sounds.Place != "" {
		out.Sounds.Place = b.Sounds.Place
	}
	if b.Sounds.Gong != "" {
		out.Sounds.Gong = b.Sounds.Gong
	}
	if b.Sounds.Click != "" {
		out.Sounds.Click = b.Sounds.Click
	}

	// characters
	switch {
	case len(b.Characters) > 0:
		out.Characters = append([]RawCharacter(nil), b.Characters...)
		out.CharactersFile = ""
	case b.CharactersFile != "":
		out.Characters = nil
		out.CharactersFile = b.CharactersFile
	}

	return out
}
