// Package plan defines the training-plan data model shared by the skeleton
// generator, the methodology strategies, and the distribution enforcer.
//
// All pipeline stages treat plans as values: a stage clones its input and
// returns the modified copy, so callers never observe in-place mutation.
package plan

import (
	"time"

	"github.com/google/uuid"
)

// Phase is a periodization stage. Every block belongs to exactly one phase.
type Phase string

const (
	PhaseBase     Phase = "base"
	PhaseBuild    Phase = "build"
	PhasePeak     Phase = "peak"
	PhaseTaper    Phase = "taper"
	PhaseRecovery Phase = "recovery"
)

// AllPhases lists every phase in periodization order. Target tables are
// validated against this list for completeness.
var AllPhases = []Phase{PhaseBase, PhaseBuild, PhasePeak, PhaseTaper, PhaseRecovery}

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	for _, q := range AllPhases {
		if p == q {
			return true
		}
	}
	return false
}

// WorkoutType is the semantic type of a workout, independent of the concrete
// template variant chosen for it.
type WorkoutType string

const (
	WorkoutEasy         WorkoutType = "easy"
	WorkoutSteady       WorkoutType = "steady"
	WorkoutTempo        WorkoutType = "tempo"
	WorkoutThreshold    WorkoutType = "threshold"
	WorkoutVO2Max       WorkoutType = "vo2max"
	WorkoutSpeed        WorkoutType = "speed"
	WorkoutHillRepeats  WorkoutType = "hill_repeats"
	WorkoutLongRun      WorkoutType = "long_run"
	WorkoutMediumLong   WorkoutType = "medium_long"
	WorkoutRecovery     WorkoutType = "recovery"
	WorkoutMarathonPace WorkoutType = "marathon_pace"
	WorkoutRacePace     WorkoutType = "race_pace"
	WorkoutTimeTrial    WorkoutType = "time_trial"
)

// IsRaceEffort reports whether the type represents a race-specific effort
// that the distribution enforcer must not soften below critical severity.
func (t WorkoutType) IsRaceEffort() bool {
	return t == WorkoutRacePace || t == WorkoutTimeTrial
}

// IsEasyType reports whether the type is already an easy/recovery effort,
// the only types eligible for non-critical easy-conversion.
func (t WorkoutType) IsEasyType() bool {
	return t == WorkoutEasy || t == WorkoutSteady || t == WorkoutRecovery
}

// PaceRange is a target pace window in seconds per kilometre.
// Min is the faster bound.
type PaceRange struct {
	MinSecPerKm float64 `json:"min_sec_per_km" yaml:"min_sec_per_km"`
	MaxSecPerKm float64 `json:"max_sec_per_km" yaml:"max_sec_per_km"`
}

// Segment is one continuous piece of a workout at a given effort.
type Segment struct {
	DurationMin float64    `json:"duration_min" yaml:"duration_min"`
	Intensity   float64    `json:"intensity" yaml:"intensity"` // 0–100, percent of effort ceiling
	Zone        string     `json:"zone" yaml:"zone"`
	Pace        *PaceRange `json:"pace,omitempty" yaml:"pace,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
}

// Workout is a structured session: ordered segments plus training-effect
// estimates.
type Workout struct {
	Type             WorkoutType `json:"type" yaml:"type"`
	Name             string      `json:"name" yaml:"name"`
	Segments         []Segment   `json:"segments" yaml:"segments"`
	AdaptationTarget string      `json:"adaptation_target,omitempty" yaml:"adaptation_target,omitempty"`
	EstimatedTSS     float64     `json:"estimated_tss" yaml:"estimated_tss"`
	RecoveryHours    float64     `json:"recovery_hours" yaml:"recovery_hours"`
}

// TotalDuration returns the workout duration in minutes, summed over segments.
func (w Workout) TotalDuration() float64 {
	var total float64
	for _, s := range w.Segments {
		total += s.DurationMin
	}
	return total
}

// Clone returns a deep copy of the workout.
func (w Workout) Clone() Workout {
	out := w
	out.Segments = make([]Segment, len(w.Segments))
	for i, s := range w.Segments {
		out.Segments[i] = s
		if s.Pace != nil {
			p := *s.Pace
			out.Segments[i].Pace = &p
		}
	}
	return out
}

// PlannedWorkout is a workout placed on the calendar with target metrics.
type PlannedWorkout struct {
	ID                uuid.UUID `json:"id" yaml:"id"`
	Date              time.Time `json:"date" yaml:"date"`
	Workout           Workout   `json:"workout" yaml:"workout"`
	TargetDurationMin float64   `json:"target_duration_min" yaml:"target_duration_min"`
	TargetIntensity   float64   `json:"target_intensity" yaml:"target_intensity"`
	TargetLoad        float64   `json:"target_load" yaml:"target_load"`
}

// Clone returns a deep copy of the planned workout.
func (pw PlannedWorkout) Clone() PlannedWorkout {
	out := pw
	out.Workout = pw.Workout.Clone()
	return out
}

// Microcycle is one training week.
type Microcycle struct {
	Week           int              `json:"week" yaml:"week"`
	Workouts       []PlannedWorkout `json:"workouts" yaml:"workouts"`
	VolumeScale    float64          `json:"volume_scale,omitempty" yaml:"volume_scale,omitempty"`
	IntensityScale float64          `json:"intensity_scale,omitempty" yaml:"intensity_scale,omitempty"`
}

// Clone returns a deep copy of the microcycle.
func (m Microcycle) Clone() Microcycle {
	out := m
	out.Workouts = make([]PlannedWorkout, len(m.Workouts))
	for i, pw := range m.Workouts {
		out.Workouts[i] = pw.Clone()
	}
	return out
}

// Block is one periodization phase spanning a contiguous week range.
type Block struct {
	Phase       Phase                  `json:"phase" yaml:"phase"`
	StartWeek   int                    `json:"start_week" yaml:"start_week"`
	EndWeek     int                    `json:"end_week" yaml:"end_week"`
	Microcycles []Microcycle           `json:"microcycles" yaml:"microcycles"`
	Target      *IntensityDistribution `json:"target,omitempty" yaml:"target,omitempty"`
}

// WeekInPhase converts an absolute plan week to a 1-based week within the
// block, or 0 if the week falls outside the block.
func (b Block) WeekInPhase(week int) int {
	if week < b.StartWeek || week > b.EndWeek {
		return 0
	}
	return week - b.StartWeek + 1
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	out := b
	out.Microcycles = make([]Microcycle, len(b.Microcycles))
	for i, m := range b.Microcycles {
		out.Microcycles[i] = m.Clone()
	}
	if b.Target != nil {
		t := *b.Target
		out.Target = &t
	}
	return out
}

// Config is the generation request: the methodology, the athlete's foundation
// values, and the calendar shape of the plan.
type Config struct {
	Methodology           string    `json:"methodology" yaml:"methodology"`
	VDOT                  float64   `json:"vdot,omitempty" yaml:"vdot,omitempty"`
	ThresholdPaceSecPerKm float64   `json:"threshold_pace_sec_per_km,omitempty" yaml:"threshold_pace_sec_per_km,omitempty"`
	Weeks                 int       `json:"weeks" yaml:"weeks"`
	DaysPerWeek           int       `json:"days_per_week" yaml:"days_per_week"`
	RaceDistanceKm        float64   `json:"race_distance_km,omitempty" yaml:"race_distance_km,omitempty"`
	RaceDate              time.Time `json:"race_date" yaml:"race_date"`
	IncludeRecovery       bool      `json:"include_recovery,omitempty" yaml:"include_recovery,omitempty"`
}

// PhaseSummary is the per-phase rollup attached to a plan.
type PhaseSummary struct {
	Phase        Phase                 `json:"phase" yaml:"phase"`
	Weeks        int                   `json:"weeks" yaml:"weeks"`
	Distribution IntensityDistribution `json:"distribution" yaml:"distribution"`
}

// Plan is a complete multi-week training plan.
type Plan struct {
	ID      uuid.UUID      `json:"id" yaml:"id"`
	Config  Config         `json:"config" yaml:"config"`
	Blocks  []Block        `json:"blocks" yaml:"blocks"`
	Summary []PhaseSummary `json:"summary,omitempty" yaml:"summary,omitempty"`
	Report  *Report        `json:"report,omitempty" yaml:"report,omitempty"`
}

// Workouts returns pointers to every planned workout in calendar order.
// The pointers alias the plan, so callers that need value semantics must
// Clone the plan first.
func (p *Plan) Workouts() []*PlannedWorkout {
	var out []*PlannedWorkout
	for bi := range p.Blocks {
		for mi := range p.Blocks[bi].Microcycles {
			mc := &p.Blocks[bi].Microcycles[mi]
			for wi := range mc.Workouts {
				out = append(out, &mc.Workouts[wi])
			}
		}
	}
	return out
}

// TotalWorkouts counts planned workouts across all blocks.
func (p *Plan) TotalWorkouts() int {
	n := 0
	for _, b := range p.Blocks {
		for _, m := range b.Microcycles {
			n += len(m.Workouts)
		}
	}
	return n
}

// BlockForWeek returns the block containing the given absolute week.
func (p *Plan) BlockForWeek(week int) (Block, bool) {
	for _, b := range p.Blocks {
		if week >= b.StartWeek && week <= b.EndWeek {
			return b, true
		}
	}
	return Block{}, false
}

// Clone returns a deep copy of the plan.
func (p Plan) Clone() Plan {
	out := p
	out.Blocks = make([]Block, len(p.Blocks))
	for i, b := range p.Blocks {
		out.Blocks[i] = b.Clone()
	}
	out.Summary = make([]PhaseSummary, len(p.Summary))
	copy(out.Summary, p.Summary)
	if p.Report != nil {
		r := p.Report.Clone()
		out.Report = &r
	}
	return out
}
