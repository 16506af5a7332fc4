// Package snap implements the face-pairing snap candidate engine
// ("Snap V3"). Given a moving box, a drag axis and direction, and a
// set of target boxes, it enumerates every geometrically valid face
// pairing (connection, alignment, or T-joint), filters by user
// intent and collision safety, and picks the best snap per axis.
// Hysteresis keeps an accepted snap stable across drag frames.
//
// The engine is stateless and referentially transparent: all inputs
// are read-only snapshots, and the only state that survives a frame
// is the PreviousSnap token the caller threads back in.
package snap
