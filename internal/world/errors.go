package world

import "errors"

var (
	// ErrUnknownTile is returned when a tile name does not match any TileType.
	ErrUnknownTile = errors.New("world: unknown tile type")
	// ErrSnapshotSize is returned when a snapshot's tile list does not match its dimensions.
	ErrSnapshotSize = errors.New("world: snapshot tile count does not match width*height")
)
