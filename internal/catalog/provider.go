package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	visualExts = []string{"", ".png", ".jpg", ".jpeg"}
	audioExts  = []string{"", ".wav", ".mp3", ".ogg"}
)

// FileProvider resolves the catalog from files under a Loader's base directory.
// Missing sprites and clips degrade to empty handles with a warning.
type FileProvider struct {
	loader *Loader
	set    string
	logger *slog.Logger

	mu       sync.RWMutex
	cardBack Visual
	sounds   SoundSet
}

// NewFileProvider creates a provider for the given catalog set ("" = default only).
func NewFileProvider(loader *Loader, set string, logger *slog.Logger) *FileProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileProvider{loader: loader, set: set, logger: logger}
}

// LoadCatalog reads, validates and resolves the catalog.
func (p *FileProvider) LoadCatalog() ([]*Record, error) {
	raw, err := p.loader.LoadMerged(p.set)
	if err != nil {
		return nil, err
	}
	if err := ValidateRaw(raw); err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(raw.Characters))
	for _, c := range raw.Characters {
		rec := &Record{
			Name:        strings.TrimSpace(c.Name),
			Description: c.Description,
			Type:        c.Type,
			Power:       *c.PowerScore,
		}
		if c.FilePath == "" {
			p.logger.Warn("character has no sprite path", "character", rec.Name)
		} else {
			rec.Visual = Visual(p.resolve(c.FilePath, visualExts))
			if !rec.Visual.Valid() {
				p.logger.Warn("character sprite not found", "character", rec.Name, "path", c.FilePath)
			}
		}
		for _, a := range c.Audios {
			clip := Audio(p.resolve(a, audioExts))
			if !clip.Valid() {
				p.logger.Warn("character audio not found", "character", rec.Name, "path", a)
				continue
			}
			rec.Audio = append(rec.Audio, clip)
		}
		records = append(records, rec)
	}

	cardBack := Visual(p.resolve(raw.CardBack, visualExts))
	if !cardBack.Valid() {
		p.logger.Warn("card back not found", "path", raw.CardBack)
	}
	sounds := SoundSet{
		Place: Audio(p.resolve(raw.Sounds.Place, audioExts)),
		Gong:  Audio(p.resolve(raw.Sounds.Gong, audioExts)),
		Click: Audio(p.resolve(raw.Sounds.Click, audioExts)),
	}

	p.mu.Lock()
	p.cardBack = cardBack
	p.sounds = sounds
	p.mu.Unlock()

	p.logger.Info("catalog loaded", "set", p.set, "characters", len(records), "version", raw.Version)
	return records, nil
}

// CardBack returns the card back resolved by the last LoadCatalog.
func (p *FileProvider) CardBack() Visual {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cardBack
}

// Sounds returns the clips resolved by the last LoadCatalog.
func (p *FileProvider) Sounds() SoundSet {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sounds
}

// resolve finds rel under the base directory, trying each extension in turn.
func (p *FileProvider) resolve(rel string, exts []string) string {
	if rel == "" {
		return ""
	}
	for _, ext := range exts {
		path := p.loader.Paths().AssetPath(rel + ext)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path
		}
	}
	return ""
}

// StaticProvider serves a fixed in-memory catalog.
type StaticProvider struct {
	Records []*Record
	Back    Visual
	Clips   SoundSet
	Err     error
}

func (s *StaticProvider) LoadCatalog() ([]*Record, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if len(s.Records) == 0 {
		return nil, fmt.Errorf("static catalog: %w", ErrCatalogUnavailable)
	}
	return append([]*Record(nil), s.Records...), nil
}

func (s *StaticProvider) CardBack() Visual { return s.Back }
func (s *StaticProvider) Sounds() SoundSet { return s.Clips }
