package world

import (
	"errors"
	"testing"
)

func TestFromSnapshotReplaysTiles(t *testing.T) {
	m := NewMap(12, 8, 4, BiomeCaverns)
	carve(m, 1, 1, 10, 6, TileFloor)
	m.Start = Pos(2, 2)
	m.SetExit(Pos(9, 5))
	m.SetType(Pos(5, 3), TileShrineRest)
	m.EliteRooms = []Position{Pos(6, 4)}
	m.Tile(Pos(3, 3)).Explored = true
	m.Tile(Pos(3, 3)).Visible = true
	m.Tile(Pos(4, 4)).Glyph = '*'

	got, err := FromSnapshot(m.Snapshot())
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}

	if got.Width != m.Width || got.Height != m.Height || got.Floor != 4 || got.Biome != BiomeCaverns {
		t.Fatalf("header mismatch: %dx%d floor %d %v", got.Width, got.Height, got.Floor, got.Biome)
	}
	if got.Start != m.Start || !got.HasValidExit() || *got.Exit != *m.Exit {
		t.Errorf("start/exit not replayed: start %v exit %v", got.Start, got.Exit)
	}
	if len(got.EliteRooms) != 1 || got.EliteRooms[0] != Pos(6, 4) {
		t.Errorf("elite anchors = %v", got.EliteRooms)
	}
	for i := range m.Tiles {
		if got.Tiles[i].Type != m.Tiles[i].Type || got.Tiles[i].Explored != m.Tiles[i].Explored ||
			got.Tiles[i].Glyph != m.Tiles[i].Glyph {
			t.Fatalf("tile %v mismatch: %+v != %+v", m.PositionAt(i), got.Tiles[i], m.Tiles[i])
		}
	}
	if got.Tile(Pos(3, 3)).Visible {
		t.Error("visibility is transient and must not be replayed")
	}
}

func TestFromSnapshotRejectsBadInput(t *testing.T) {
	s := NewMap(4, 4, 1, BiomeCrypt).Snapshot()
	s.Tiles = s.Tiles[:10]
	if _, err := FromSnapshot(s); !errors.Is(err, ErrSnapshotSize) {
		t.Errorf("expected ErrSnapshotSize, got %v", err)
	}

	s = NewMap(4, 4, 1, BiomeCrypt).Snapshot()
	s.Tiles[5].Type = "marble"
	if _, err := FromSnapshot(s); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("expected ErrUnknownTile, got %v", err)
	}
}
