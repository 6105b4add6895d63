// Package methodology implements the coaching-methodology strategies: a
// registry of named strategies, shared default customization behavior, and
// one concrete strategy per supported methodology (Daniels, Lydiard,
// Pfitzinger). Strategies rewrite a generic plan skeleton into a plan that
// follows the methodology's physiological model.
package methodology

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/claude/stride/internal/catalog"
	"github.com/claude/stride/internal/plan"
)

// Supported methodology identifiers.
const (
	Daniels    = "daniels"
	Lydiard    = "lydiard"
	Pfitzinger = "pfitzinger"
)

// ErrUnknownMethodology is returned when resolving an unrecognized identifier.
var ErrUnknownMethodology = errors.New("unknown methodology")

// ErrFoundationOutOfRange is returned when an athlete's foundation value
// (VDOT score or threshold pace) falls outside its valid range.
var ErrFoundationOutOfRange = errors.New("foundation value out of range")

// Strategy is the capability interface every methodology implements.
type Strategy interface {
	// Name returns the methodology identifier.
	Name() string
	// EnhancePlan rewrites a generic skeleton into a methodology-specific
	// plan: variants re-selected per phase, intensities and paces rewritten,
	// phase summaries and block targets filled in. Returns a new plan value.
	EnhancePlan(p plan.Plan) (plan.Plan, error)
	// CustomizeWorkout returns a copy of the workout with segment
	// intensities adjusted for the phase and the methodology's emphasis.
	CustomizeWorkout(w plan.Workout, phase plan.Phase, weekNumber int) plan.Workout
	// SelectWorkoutVariant resolves a requested type to a concrete template
	// variant for the phase and week-within-phase.
	SelectWorkoutVariant(t plan.WorkoutType, phase plan.Phase, weekInPhase int) (string, error)
	// PhaseDistribution returns the target intensity distribution for a phase.
	PhaseDistribution(phase plan.Phase) plan.IntensityDistribution
	// WorkoutEmphasis returns the intensity multiplier for a workout type.
	WorkoutEmphasis(t plan.WorkoutType) float64
}

// PaceTabler is implemented by strategies that publish a pace table for the
// plan report.
type PaceTabler interface {
	PaceTable(cfg plan.Config) (map[string]string, error)
}

// PhaseAllocator is implemented by strategies that prescribe their own
// periodization lengths instead of the skeleton's generic split. The
// returned map covers base/build/peak/taper and sums to totalWeeks.
type PhaseAllocator interface {
	PhaseDurations(totalWeeks int) map[plan.Phase]int
}

// GuidanceProvider is implemented by strategies that publish free-text
// methodology guidance for downstream reporting.
type GuidanceProvider interface {
	Guidance(cfg plan.Config) []string
}

// Registry resolves methodology identifiers to lazily constructed strategy
// singletons. It is an explicit value owned by the caller; construct once at
// startup and pass by reference.
type Registry struct {
	cat   *catalog.Catalog
	log   *slog.Logger
	cache map[string]Strategy
}

// NewRegistry builds a registry over the given template catalog. The
// phase-target table is validated for completeness here: a missing
// (methodology, phase) entry is a configuration defect and fails fast.
func NewRegistry(cat *catalog.Catalog, log *slog.Logger) (*Registry, error) {
	if err := validateTargets(); err != nil {
		return nil, fmt.Errorf("phase target table: %w", err)
	}
	return &Registry{
		cat:   cat,
		log:   log,
		cache: make(map[string]Strategy),
	}, nil
}

// Resolve returns the strategy for an identifier, constructing and caching
// it on first use. Repeated resolutions return the identical instance.
func (r *Registry) Resolve(id string) (Strategy, error) {
	if s, ok := r.cache[id]; ok {
		return s, nil
	}
	var (
		s   Strategy
		err error
	)
	switch id {
	case Daniels:
		s, err = newDaniels(r.cat, r.log)
	case Lydiard:
		s, err = newLydiard(r.cat, r.log)
	case Pfitzinger:
		s, err = newPfitzinger(r.cat, r.log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethodology, id)
	}
	if err != nil {
		return nil, fmt.Errorf("constructing %s strategy: %w", id, err)
	}
	r.cache[id] = s
	return s, nil
}

// ListAvailable returns the supported methodology identifiers, sorted.
func (r *Registry) ListAvailable() []string {
	ids := []string{Daniels, Lydiard, Pfitzinger}
	sort.Strings(ids)
	return ids
}

// Reset clears the strategy cache. Test isolation only; never called on the
// enhancement path.
func (r *Registry) Reset() {
	r.cache = make(map[string]Strategy)
}
