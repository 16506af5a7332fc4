// Package scene defines the furniture scene snapshot consumed by the
// snapping engines: parts, cabinets, the room's wall polygon, and the
// current selection/visibility state. A scene is a read-only snapshot
// per drag frame; the engines never mutate it.
package scene
