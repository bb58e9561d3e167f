// types.go
package catalog

import "errors"

// ErrCatalogUnavailable is returned when no catalog source resolves.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Visual is an opaque handle to a sprite. Empty means the asset was not found.
type Visual string

// Valid reports whether the handle points at a resolved asset.
func (v Visual) Valid() bool { return v != "" }

// Audio is an opaque handle to a sound clip. Empty means the asset was not found.
type Audio string

// Valid reports whether the handle points at a resolved asset.
func (a Audio) Valid() bool { return a != "" }

// SoundSet holds the fixed clips used by the round coordinator.
type SoundSet struct {
	Place Audio // chip placement
	Gong  Audio // round end
	Click Audio // preview tile flip
}

// Record is one drawable character. Records are immutable once loaded and
// are shared by pointer between the pool and the board.
type Record struct {
	Name        string
	Description string
	Type        string
	Power       int
	Visual      Visual
	Audio       []Audio
}

// Provider resolves the character catalog and the handles the round needs.
// CardBack and Sounds reflect the most recent successful LoadCatalog.
type Provider interface {
	LoadCatalog() ([]*Record, error)
	CardBack() Visual
	Sounds() SoundSet
}

// Raw catalog loaded from YAML or JSON; field names follow the asset files.
type RawCatalog struct {
	Version        string         `yaml:"version"`
	CardBack       string         `yaml:"card_back,omitempty"`
	Sounds         RawSounds      `yaml:"sounds,omitempty"`
	CharactersFile string         `yaml:"characters_file,omitempty"`
	Characters     []RawCharacter `yaml:"characters,omitempty"`
	Notes          string         `yaml:"notes,omitempty"`
}

type RawSounds struct {
	Place string `yaml:"place,omitempty"`
	Gong  string `yaml:"gong,omitempty"`
	Click string `yaml:"click,omitempty"`
}

type RawCharacter struct {
	FilePath    string   `yaml:"filePath"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"creatureDescription"`
	Type        string   `yaml:"Type"`
	PowerScore  *int     `yaml:"powerScore"`
	Audios      []string `yaml:"characterAudios,omitempty"`
}
