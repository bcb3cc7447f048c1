package levelgen

import "errors"

// Sentinel errors returned by the generation pipeline. Callers should use
// errors.Is against these, never string matching.
var (
	// ErrInvalidLevel is returned when GenerateLevel is called with a
	// negative level number.
	ErrInvalidLevel = errors.New("levelgen: level must be non-negative")

	// ErrGridBuildFailure is returned when the partition/room pass produced
	// fewer than two rooms, leaving nothing for HallwayNetworker to connect.
	ErrGridBuildFailure = errors.New("levelgen: grid build produced fewer than two rooms")

	// ErrUnreachableDestination names the case of two rooms selected for
	// connection having no A* path between them. No function in this
	// package returns it: CarveHallways drops such an edge and carries on.
	ErrUnreachableDestination = errors.New("levelgen: no path between selected rooms")

	// ErrPlacementFailed is returned by PlaceEntities when the grid has no
	// FLOOR tile for the player. Enemy and item shortfalls are logged, not
	// returned.
	ErrPlacementFailed = errors.New("levelgen: exhausted placement retries")
)
