package world

import (
	"fmt"
	"unicode/utf8"
)

// TileSnapshot is the persisted form of a tile. Visibility and light are
// transient and are not kept.
type TileSnapshot struct {
	Type     string `yaml:"type" json:"type"`
	Explored bool   `yaml:"explored,omitempty" json:"explored,omitempty"`
	Glyph    string `yaml:"glyph,omitempty" json:"glyph,omitempty"`
}

// Snapshot is the reduced form of a Map handed to the save system.
type Snapshot struct {
	Width      int            `yaml:"width" json:"width"`
	Height     int            `yaml:"height" json:"height"`
	Floor      int            `yaml:"floor" json:"floor"`
	Biome      string         `yaml:"biome" json:"biome"`
	Start      Position       `yaml:"start" json:"start"`
	Exit       *Position      `yaml:"exit,omitempty" json:"exit,omitempty"`
	EliteRooms []Position     `yaml:"elite_rooms,omitempty" json:"elite_rooms,omitempty"`
	Tiles      []TileSnapshot `yaml:"tiles" json:"tiles"`
}

// Snapshot captures the persisted form of the map.
func (m *Map) Snapshot() Snapshot {
	s := Snapshot{
		Width:      m.Width,
		Height:     m.Height,
		Floor:      m.Floor,
		Biome:      m.Biome.String(),
		Start:      m.Start,
		EliteRooms: append([]Position(nil), m.EliteRooms...),
		Tiles:      make([]TileSnapshot, len(m.Tiles)),
	}
	if m.Exit != nil {
		exit := *m.Exit
		s.Exit = &exit
	}
	for i, t := range m.Tiles {
		ts := TileSnapshot{Type: t.Type.String(), Explored: t.Explored}
		if t.Glyph != 0 {
			ts.Glyph = string(t.Glyph)
		}
		s.Tiles[i] = ts
	}
	return s
}

// FromSnapshot rebuilds a Map tile by tile from its persisted form without
// running any generator. Light levels start at zero.
func FromSnapshot(s Snapshot) (*Map, error) {
	if s.Width <= 0 || s.Height <= 0 || len(s.Tiles) != s.Width*s.Height {
		return nil, fmt.Errorf("%w: %dx%d with %d tiles", ErrSnapshotSize, s.Width, s.Height, len(s.Tiles))
	}
	biome, err := ParseBiome(s.Biome)
	if err != nil {
		return nil, err
	}

	m := NewMap(s.Width, s.Height, s.Floor, biome)
	for i, ts := range s.Tiles {
		t, err := ParseTileType(ts.Type)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		m.Tiles[i].Type = t
		m.Tiles[i].Explored = ts.Explored
		if ts.Glyph != "" {
			r, _ := utf8.DecodeRuneInString(ts.Glyph)
			m.Tiles[i].Glyph = r
		}
	}

	m.Start = s.Start
	if s.Exit != nil {
		exit := *s.Exit
		m.Exit = &exit
	}
	m.EliteRooms = append([]Position(nil), s.EliteRooms...)
	return m, nil
}
