package geometry

import "errors"

var (
	// ErrInvalidGeometry marks negative areas, thicknesses, volumes, densities or multipliers.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrNegativeVolume marks a container whose subvolumes exceed its own volume.
	ErrNegativeVolume = errors.New("subvolumes exceed container volume")
	// ErrAmbiguousMassSpec marks a node given both a mass and a density (or material).
	ErrAmbiguousMassSpec = errors.New("both mass and density given")
	// ErrMissingMassSpec marks a node given neither a mass nor a density.
	ErrMissingMassSpec = errors.New("neither mass nor density given")
)
