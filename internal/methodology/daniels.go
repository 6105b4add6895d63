package methodology

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/claude/stride/internal/catalog"
	"github.com/claude/stride/internal/plan"
	"github.com/claude/stride/internal/vdot"
)

// zoneAnchor is the Daniels intensity anchor for a named zone, as percent of
// effort ceiling.
var danielsZoneAnchors = map[string]float64{
	"recovery":   60,
	"easy":       70,
	"steady":     75,
	"marathon":   80,
	"tempo":      84,
	"threshold":  88,
	"interval":   98,
	"repetition": 100,
}

// danielsPhaseZoneAdjust shifts high-end zones by phase: base training pulls
// interval and repetition work well down, peak sharpens slightly.
var danielsPhaseZoneAdjust = map[plan.Phase]map[string]float64{
	plan.PhaseBase: {"interval": -15, "repetition": -25},
	plan.PhasePeak: {"interval": +2, "repetition": +2},
}

// danielsStrategy derives every training intensity from a single VDOT score
// and enforces a strict 80/20 split via its phase targets.
type danielsStrategy struct {
	defaults
	selection selectionTable
	// paceCache memoizes zone paces keyed by the rounded VDOT score, so a
	// plan's many workouts trigger one table lookup.
	paceCache map[int]vdot.ZonePaces
}

func newDaniels(cat *catalog.Catalog, log *slog.Logger) (*danielsStrategy, error) {
	s := &danielsStrategy{
		defaults: defaults{
			name: Daniels,
			cat:  cat,
			log:  log,
			emphasis: map[plan.WorkoutType]float64{
				plan.WorkoutThreshold: 1.02,
				plan.WorkoutVO2Max:    1.02,
				plan.WorkoutEasy:      0.97,
				plan.WorkoutRecovery:  0.95,
			},
			recoveryEmphasis: 1.0,
		},
		selection: selectionTable{
			// Threshold work unlocks strictly after base week 4; before that
			// a continuous tempo stands in. After the unlock, cruise
			// intervals and continuous threshold alternate for variety.
			{plan.WorkoutThreshold, plan.PhaseBase}: unlockAfter(4, "tempo_steady", "threshold_intervals", "threshold_continuous"),
			{plan.WorkoutThreshold, plan.PhaseBuild}: alternate("threshold_intervals", "threshold_waves"),
			// High-neuromuscular work is substituted, never rejected.
			{plan.WorkoutVO2Max, plan.PhaseBase}:  fixed("tempo_steady"),
			{plan.WorkoutVO2Max, plan.PhaseBuild}: unlockAfter(2, "hill_short", "vo2_intervals"),
			{plan.WorkoutSpeed, plan.PhaseBase}:   fixed("easy_standard"),
			{plan.WorkoutSpeed, plan.PhaseBuild}:  unlockAfter(2, "speed_strides", "speed_reps"),
			{plan.WorkoutLongRun, plan.PhasePeak}: alternate("long_progression", "long_easy"),
		},
		paceCache: make(map[int]vdot.ZonePaces),
	}
	if err := s.selection.validate(cat); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *danielsStrategy) Name() string { return Daniels }

func (s *danielsStrategy) EnhancePlan(p plan.Plan) (plan.Plan, error) {
	paces, err := s.paces(p.Config.VDOT)
	if err != nil {
		return plan.Plan{}, err
	}
	out, err := enhancePlan(s, s.cat, p)
	if err != nil {
		return plan.Plan{}, err
	}
	for _, pw := range out.Workouts() {
		s.annotatePaces(&pw.Workout, paces)
	}
	return out, nil
}

func (s *danielsStrategy) CustomizeWorkout(w plan.Workout, phase plan.Phase, weekNumber int) plan.Workout {
	out := s.customizeWorkout(w, phase, weekNumber)
	// Re-anchor each segment to its zone's canonical intensity, with the
	// phase-specific zone shifts applied on top.
	zoneAdj := danielsPhaseZoneAdjust[phase]
	for i := range out.Segments {
		seg := &out.Segments[i]
		anchor, ok := danielsZoneAnchors[seg.Zone]
		if !ok {
			if zd, found := s.cat.ZoneDefault(seg.Zone); found {
				anchor = zd.Intensity
			} else {
				s.log.Warn("unknown zone, keeping adjusted intensity",
					"methodology", Daniels, "zone", seg.Zone)
				continue
			}
		}
		seg.Intensity = clampIntensity(anchor + zoneAdj[seg.Zone] + phaseAdjust[phase])
	}
	return out
}

func (s *danielsStrategy) SelectWorkoutVariant(t plan.WorkoutType, phase plan.Phase, weekInPhase int) (string, error) {
	return s.selection.resolve(s.defaults, t, phase, weekInPhase)
}

func (s *danielsStrategy) PhaseDistribution(phase plan.Phase) plan.IntensityDistribution {
	return s.phaseDistribution(phase)
}

func (s *danielsStrategy) WorkoutEmphasis(t plan.WorkoutType) float64 {
	return s.workoutEmphasis(t)
}

// paces returns the zone paces for a VDOT score, memoized by rounded score.
func (s *danielsStrategy) paces(score float64) (vdot.ZonePaces, error) {
	key := int(math.Round(score))
	if zp, ok := s.paceCache[key]; ok {
		return zp, nil
	}
	zp, err := vdot.Paces(score)
	if err != nil {
		return vdot.ZonePaces{}, fmt.Errorf("%w: vdot %.1f", ErrFoundationOutOfRange, score)
	}
	s.paceCache[key] = zp
	return zp, nil
}

// annotatePaces attaches the zone pace range to every segment whose zone has
// one.
func (s *danielsStrategy) annotatePaces(w *plan.Workout, paces vdot.ZonePaces) {
	for i := range w.Segments {
		if pr, ok := paces.Zone(w.Segments[i].Zone); ok {
			r := pr
			w.Segments[i].Pace = &r
		}
	}
}

// PaceTable publishes the derived zone paces for the plan report.
func (s *danielsStrategy) PaceTable(cfg plan.Config) (map[string]string, error) {
	paces, err := s.paces(cfg.VDOT)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for _, zone := range []string{"recovery", "easy", "marathon", "threshold", "interval", "repetition"} {
		pr, _ := paces.Zone(zone)
		out[zone] = formatPaceRange(pr)
	}
	return out, nil
}

// Guidance summarizes the methodology for downstream reporting.
func (s *danielsStrategy) Guidance(cfg plan.Config) []string {
	return []string{
		fmt.Sprintf("Training paces derived from VDOT %.1f (%s).", cfg.VDOT, vdot.Label(cfg.VDOT)),
		"Hold the 80/20 split: quality sessions earn their place, everything else stays easy.",
		"Threshold work begins after base week 4; earlier weeks substitute continuous tempo.",
	}
}

func formatPaceRange(pr plan.PaceRange) string {
	return fmt.Sprintf("%s-%s /km", formatPace(pr.MinSecPerKm), formatPace(pr.MaxSecPerKm))
}

func formatPace(secPerKm float64) string {
	total := int(math.Round(secPerKm))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
