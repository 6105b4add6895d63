// Package skeleton assembles the generic multi-week plan structure that
// methodology strategies later customize: periodization blocks, weekly
// microcycles, and catalog-default workouts placed on the calendar.
package skeleton

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/claude/stride/internal/catalog"
	"github.com/claude/stride/internal/plan"
)

const (
	minWeeks = 4
	maxWeeks = 52
)

// phasePattern lists the generic workout types for one training week of a
// phase, in priority order. When fewer days are available the tail is
// dropped; the long run and the first quality day survive longest.
var phasePattern = map[plan.Phase][]plan.WorkoutType{
	plan.PhaseBase:     {plan.WorkoutLongRun, plan.WorkoutSteady, plan.WorkoutEasy, plan.WorkoutTempo, plan.WorkoutEasy, plan.WorkoutEasy, plan.WorkoutRecovery},
	plan.PhaseBuild:    {plan.WorkoutLongRun, plan.WorkoutThreshold, plan.WorkoutEasy, plan.WorkoutVO2Max, plan.WorkoutEasy, plan.WorkoutMediumLong, plan.WorkoutRecovery},
	plan.PhasePeak:     {plan.WorkoutLongRun, plan.WorkoutVO2Max, plan.WorkoutEasy, plan.WorkoutThreshold, plan.WorkoutRacePace, plan.WorkoutEasy, plan.WorkoutRecovery},
	plan.PhaseTaper:    {plan.WorkoutTempo, plan.WorkoutEasy, plan.WorkoutRacePace, plan.WorkoutRecovery, plan.WorkoutEasy, plan.WorkoutRecovery, plan.WorkoutRecovery},
	plan.PhaseRecovery: {plan.WorkoutRecovery, plan.WorkoutEasy, plan.WorkoutRecovery, plan.WorkoutEasy, plan.WorkoutRecovery, plan.WorkoutRecovery, plan.WorkoutRecovery},
}

// dayOffsets spreads n training days across a Monday-start week.
var dayOffsets = map[int][]int{
	3: {1, 3, 6},
	4: {1, 3, 5, 6},
	5: {0, 1, 3, 5, 6},
	6: {0, 1, 2, 3, 5, 6},
	7: {0, 1, 2, 3, 4, 5, 6},
}

// Allocator prescribes per-phase week counts for a number of
// race-preparation weeks. Methodologies that periodize differently from the
// generic split provide one; an allocation that does not cover the weeks
// exactly is ignored in favor of the generic split.
type Allocator func(weeks int) map[plan.Phase]int

// Generate builds a generic plan skeleton from the request configuration.
// The result carries catalog-default workouts; it is not training-ready
// until a methodology strategy has customized it.
func Generate(cfg plan.Config, cat *catalog.Catalog) (plan.Plan, error) {
	return GenerateAllocated(cfg, cat, nil)
}

// GenerateAllocated is Generate with a methodology-supplied phase allocation
// in place of the generic 40/30/20/10 split.
func GenerateAllocated(cfg plan.Config, cat *catalog.Catalog, allocate Allocator) (plan.Plan, error) {
	if cfg.Weeks < minWeeks || cfg.Weeks > maxWeeks {
		return plan.Plan{}, fmt.Errorf("plan length %d weeks outside supported range %d-%d", cfg.Weeks, minWeeks, maxWeeks)
	}
	days := cfg.DaysPerWeek
	if days == 0 {
		days = 5
	}
	if days < 3 || days > 7 {
		return plan.Plan{}, fmt.Errorf("days per week %d outside supported range 3-7", days)
	}

	start := planStart(cfg)
	p := plan.Plan{
		ID:     uuid.New(),
		Config: cfg,
	}

	week := 1
	for _, alloc := range allocatePhases(cfg.Weeks, cfg.IncludeRecovery, allocate) {
		block := plan.Block{
			Phase:     alloc.phase,
			StartWeek: week,
			EndWeek:   week + alloc.weeks - 1,
		}
		for w := 0; w < alloc.weeks; w++ {
			mc, err := buildWeek(cat, alloc.phase, week+w, w+1, days, start)
			if err != nil {
				return plan.Plan{}, err
			}
			block.Microcycles = append(block.Microcycles, mc)
		}
		week += alloc.weeks
		p.Blocks = append(p.Blocks, block)
		p.Summary = append(p.Summary, plan.PhaseSummary{Phase: alloc.phase, Weeks: alloc.weeks})
	}
	return p, nil
}

type phaseAlloc struct {
	phase plan.Phase
	weeks int
}

// allocatePhases splits the total weeks into base/build/peak/taper, using
// the methodology's allocation when one is supplied and valid, otherwise a
// 40/30/20/10 split with a one-week floor per phase. A trailing recovery
// week is carved from the total when requested.
func allocatePhases(totalWeeks int, includeRecovery bool, allocate Allocator) []phaseAlloc {
	racePrep := totalWeeks
	if includeRecovery {
		racePrep--
	}

	allocs := customAllocs(racePrep, allocate)
	if allocs == nil {
		taper := max(1, racePrep/10)
		peak := max(1, racePrep*2/10)
		build := max(1, racePrep*3/10)
		base := racePrep - taper - peak - build
		if base < 1 {
			base = 1
			build = max(1, racePrep-base-peak-taper)
		}
		allocs = []phaseAlloc{
			{plan.PhaseBase, base},
			{plan.PhaseBuild, build},
			{plan.PhasePeak, peak},
			{plan.PhaseTaper, taper},
		}
	}
	if includeRecovery {
		allocs = append(allocs, phaseAlloc{plan.PhaseRecovery, 1})
	}
	return allocs
}

// customAllocs orders a methodology's phase allocation into blocks, or
// returns nil when the allocation does not cover the weeks exactly.
func customAllocs(weeks int, allocate Allocator) []phaseAlloc {
	if allocate == nil {
		return nil
	}
	byPhase := allocate(weeks)
	var allocs []phaseAlloc
	total := 0
	for _, ph := range []plan.Phase{plan.PhaseBase, plan.PhaseBuild, plan.PhasePeak, plan.PhaseTaper} {
		if w := byPhase[ph]; w > 0 {
			allocs = append(allocs, phaseAlloc{ph, w})
			total += w
		}
	}
	if total != weeks {
		return nil
	}
	return allocs
}

// buildWeek assembles one microcycle from the phase's generic pattern.
func buildWeek(cat *catalog.Catalog, phase plan.Phase, week, weekInPhase, days int, start time.Time) (plan.Microcycle, error) {
	pattern := phasePattern[phase][:days]
	offsets := dayOffsets[days]

	mc := plan.Microcycle{
		Week:           week,
		VolumeScale:    volumeScale(phase, weekInPhase),
		IntensityScale: intensityScale(phase),
	}

	// Pattern is priority-ordered; schedule chronologically within the week.
	scheduled := make([]plan.WorkoutType, days)
	copy(scheduled, pattern)
	// The long run goes on the last training day of the week.
	for i, t := range scheduled {
		if t == plan.WorkoutLongRun {
			scheduled[i], scheduled[days-1] = scheduled[days-1], scheduled[i]
			break
		}
	}

	weekStart := start.AddDate(0, 0, (week-1)*7)
	for i, t := range scheduled {
		tpls, err := cat.Lookup(t)
		if err != nil {
			return plan.Microcycle{}, fmt.Errorf("week %d: %w", week, err)
		}
		w := tpls[0].Instantiate()
		applyScales(&w, mc.VolumeScale, mc.IntensityScale)
		mc.Workouts = append(mc.Workouts, plan.PlannedWorkout{
			ID:                uuid.New(),
			Date:              weekStart.AddDate(0, 0, offsets[i]),
			Workout:           w,
			TargetDurationMin: w.TotalDuration(),
			TargetIntensity:   averageIntensity(w),
			TargetLoad:        w.EstimatedTSS,
		})
	}
	return mc, nil
}

// volumeScale ramps volume gently within a block, with a cutback every
// fourth week and a descending taper.
func volumeScale(phase plan.Phase, weekInPhase int) float64 {
	switch phase {
	case plan.PhaseTaper:
		return max(0.5, 0.8-0.2*float64(weekInPhase-1))
	case plan.PhaseRecovery:
		return 0.5
	default:
		if weekInPhase%4 == 0 {
			return 0.85
		}
		return 1 + 0.05*float64(weekInPhase-1)
	}
}

// intensityScale preserves sharpness through the taper and eases effort only
// in the recovery week.
func intensityScale(phase plan.Phase) float64 {
	if phase == plan.PhaseRecovery {
		return 0.9
	}
	return 1
}

// applyScales resizes an instantiated workout to the week's volume and
// intensity multipliers, so cutback and taper weeks are genuinely lighter
// than peak-load weeks.
func applyScales(w *plan.Workout, volume, intensity float64) {
	for i := range w.Segments {
		w.Segments[i].DurationMin *= volume
		w.Segments[i].Intensity = min(100, w.Segments[i].Intensity*intensity)
	}
	w.EstimatedTSS *= volume * intensity
	w.RecoveryHours *= volume
}

func averageIntensity(w plan.Workout) float64 {
	total := w.TotalDuration()
	if total == 0 {
		return 0
	}
	var weighted float64
	for _, s := range w.Segments {
		weighted += s.Intensity * s.DurationMin
	}
	return weighted / total
}

// planStart anchors week 1 so the plan ends on race day, or starts from the
// upcoming Monday when no race date is set.
func planStart(cfg plan.Config) time.Time {
	if !cfg.RaceDate.IsZero() {
		return cfg.RaceDate.AddDate(0, 0, -cfg.Weeks*7+1)
	}
	now := time.Now()
	daysUntilMonday := (8 - int(now.Weekday())) % 7
	if daysUntilMonday == 0 {
		daysUntilMonday = 7
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, daysUntilMonday)
}
