// internal/event/types.go
package event

import "hex-map-editor/pkg/hexmap"

const (
	TilePainted     EventType = "TilePainted"
	TileErased      EventType = "TileErased"
	TileSelected    EventType = "TileSelected"
	OriginChanged   EventType = "OriginChanged"
	MapCleared      EventType = "MapCleared"
	SettingsChanged EventType = "SettingsChanged"
)

// TileChange is the payload of TilePainted and TileErased.
type TileChange struct {
	Hex  hexmap.Hex
	From hexmap.TileType // empty when the cell did not exist
	To   hexmap.TileType // empty when erased
}

// Selection is the payload of TileSelected.
type Selection struct {
	Hex         hexmap.Hex
	Surrounding []hexmap.SurroundingTile
}
