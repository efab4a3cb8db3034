// Package cosmology fixes the constants of the simulated universe: the
// measured physical values seeded into every world's constant vector, the
// genesis defaults, and the policy factors the lifecycle operations apply.
package cosmology

// Measured physical constants, SI units. These seed indices 0-3 of a
// constant vector.
const (
	// SpeedOfLight in vacuum, m/s.
	SpeedOfLight = 299792458.0

	// Planck is the Planck constant, J·s.
	Planck = 6.62607015e-34

	// Gravitational is the Newtonian constant of gravitation, m³/(kg·s²).
	Gravitational = 6.67430e-11

	// VacuumPermittivity is the electric constant ε₀, F/m.
	VacuumPermittivity = 8.8541878128e-12
)

// Genesis defaults for a newly created world.
const (
	// ConstantCount is how many physical constants a world carries.
	ConstantCount = 30

	// SpacetimeDimensions is the size of the spacetime buffer.
	SpacetimeDimensions = 4

	// LifespanDays is the allotted lifespan of a world: five thousand years.
	LifespanDays = 5000 * 365

	// GenesisEntropy is the disorder level every world starts with (≈ Φ⁻¹).
	GenesisEntropy = 0.618

	// EntropyCeiling is the terminal disorder level.
	EntropyCeiling = 1.0

	// PrimordialUnit seeds matter, energy, consciousness, and free will.
	PrimordialUnit = 1.0
)

// Intervention policy applied by the transforming operations.
const (
	// InterventionFactor scales entropy down on every miracle.
	InterventionFactor = 0.9

	// GuidanceFactor scales entropy down again when a prayer asks for guidance.
	GuidanceFactor = 0.99

	// GuidancePhrase is the substring a prayer must contain to earn guidance.
	GuidancePhrase = "guide me"
)

// Seed returns the value a fresh constant vector holds at index i: the four
// measured constants first, then the harmonic tail 1/(i+1).
func Seed(i int) float64 {
	switch i {
	case 0:
		return SpeedOfLight
	case 1:
		return Planck
	case 2:
		return Gravitational
	case 3:
		return VacuumPermittivity
	default:
		return 1.0 / float64(i+1)
	}
}
