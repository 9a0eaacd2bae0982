// Package prefab loads data-driven entity templates from JSON files
// and instantiates them through the world so entity-list batching
// semantics hold.
package prefab

import (
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// ErrUnknownPrefab is returned when spawning an ID that was never loaded
var ErrUnknownPrefab = eris.New("prefab: unknown prefab id")

// Prefab is a template for creating entities
type Prefab struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Depth int      `json:"depth"`

	Shape    *ShapeSpec    `json:"shape,omitempty"`
	Velocity *VelocitySpec `json:"velocity,omitempty"`
	// Lifetime in seconds; zero means the entity lives forever
	Lifetime float64 `json:"lifetime,omitempty"`
}

// ShapeSpec describes the mesh geometry a prefab renders with.
// Geometry is built centered on the entity's transform.
type ShapeSpec struct {
	Kind     string  `json:"kind"` // "rect", "circle" or "triangle"
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Radius   float64 `json:"radius,omitempty"`
	Segments int     `json:"segments,omitempty"`
	Color    string  `json:"color"` // "#RRGGBB" or "#RRGGBBAA"
}

// VelocitySpec describes initial movement in pixels per second
type VelocitySpec struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// Manager holds all loaded prefabs by ID
type Manager struct {
	prefabs map[string]*Prefab
}

// NewManager creates an empty prefab manager
func NewManager() *Manager {
	return &Manager{prefabs: make(map[string]*Prefab)}
}

// LoadDirectory loads every .json file in dirPath as a prefab
func (m *Manager) LoadDirectory(dirPath string) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return eris.Wrap(err, "failed to read prefab directory")
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := m.LoadFile(filepath.Join(dirPath, entry.Name())); err != nil {
			return eris.Wrapf(err, "failed to load prefab from %s", entry.Name())
		}
	}
	return nil
}

// LoadFile loads a single prefab file
func (m *Manager) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrap(err, "failed to read prefab file")
	}
	return m.LoadBytes(data)
}

// LoadBytes parses and registers one prefab from raw JSON
func (m *Manager) LoadBytes(data []byte) error {
	var p Prefab
	if err := json.Unmarshal(data, &p); err != nil {
		return eris.Wrap(err, "failed to parse prefab")
	}
	if p.ID == "" {
		return eris.New("prefab: missing id")
	}
	if _, exists := m.prefabs[p.ID]; exists {
		return eris.Errorf("prefab: duplicate id %q", p.ID)
	}
	if p.Shape != nil {
		if _, err := ParseHexColor(p.Shape.Color); err != nil {
			return eris.Wrapf(err, "prefab %q", p.ID)
		}
	}
	m.prefabs[p.ID] = &p
	return nil
}

// Get returns a loaded prefab by ID
func (m *Manager) Get(id string) (*Prefab, bool) {
	p, ok := m.prefabs[id]
	return p, ok
}

// Count returns the number of loaded prefabs
func (m *Manager) Count() int {
	return len(m.prefabs)
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" into a color
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 && len(s) != 9 {
		return color.RGBA{}, eris.Errorf("invalid color %q", s)
	}
	if s[0] != '#' {
		return color.RGBA{}, eris.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, eris.Wrapf(err, "invalid color %q", s)
	}
	if len(s) == 7 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
