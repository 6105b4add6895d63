package methodology

import (
	"fmt"
	"log/slog"

	"github.com/claude/stride/internal/catalog"
	"github.com/claude/stride/internal/plan"
	"github.com/claude/stride/internal/vdot"
)

// Valid lactate-threshold pace range, seconds per kilometre. Covers roughly
// a 12:30 5K through a 40-minute 10K-pace jogger.
const (
	minThresholdPace = 150.0
	maxThresholdPace = 480.0
)

// pfitzingerZoneOffsets defines every zone as a fixed offset, in seconds per
// kilometre, from the single lactate-threshold foundation pace. Changing the
// foundation shifts every zone consistently.
var pfitzingerZoneOffsets = map[string]float64{
	"recovery":   +45,
	"easy":       +30,
	"steady":     +20,
	"marathon":   +12,
	"tempo":      +6,
	"threshold":  0,
	"interval":   -12,
	"repetition": -25,
}

// pfitzingerWeeklyStructure is the canonical week shape per phase.
var pfitzingerWeeklyStructure = map[plan.Phase]string{
	plan.PhaseBase:     "Tue GA · Thu MLR · Sat GA+strides · Sun Long",
	plan.PhaseBuild:    "Tue LT · Thu MLR · Sat Recovery · Sun Long",
	plan.PhasePeak:     "Tue VO2 · Thu MLR w/ MP · Sat Tune-up · Sun Long",
	plan.PhaseTaper:    "Tue LT (short) · Thu Dress rehearsal · Sun Race",
	plan.PhaseRecovery: "Every day easy or off",
}

// pfitzingerStrategy derives all paces from one lactate-threshold pace and
// leans on medium-long runs for aerobic support.
type pfitzingerStrategy struct {
	defaults
	selection selectionTable
}

func newPfitzinger(cat *catalog.Catalog, log *slog.Logger) (*pfitzingerStrategy, error) {
	s := &pfitzingerStrategy{
		defaults: defaults{
			name: Pfitzinger,
			cat:  cat,
			log:  log,
			emphasis: map[plan.WorkoutType]float64{
				plan.WorkoutThreshold:  1.03,
				plan.WorkoutMediumLong: 1.03,
				plan.WorkoutLongRun:    1.02,
				plan.WorkoutSpeed:      0.95,
			},
			recoveryEmphasis: 1.05,
		},
		selection: selectionTable{
			// Threshold unlocks strictly after base week 2.
			{plan.WorkoutThreshold, plan.PhaseBase}:   unlockAfter(2, "tempo_steady", "threshold_intervals", "threshold_continuous"),
			{plan.WorkoutThreshold, plan.PhaseBuild}:  alternate("threshold_intervals", "threshold_waves"),
			{plan.WorkoutVO2Max, plan.PhaseBase}:      fixed("tempo_steady"),
			{plan.WorkoutVO2Max, plan.PhaseBuild}:     unlockAfter(2, "hill_long", "vo2_intervals"),
			{plan.WorkoutSpeed, plan.PhaseBase}:       fixed("easy_standard"),
			{plan.WorkoutMediumLong, plan.PhaseBuild}: alternate("mlr_standard", "mlr_quality"),
			{plan.WorkoutMediumLong, plan.PhasePeak}:  fixed("mlr_quality"),
			{plan.WorkoutLongRun, plan.PhasePeak}:     alternate("long_progression", "long_easy"),
		},
	}
	if err := s.selection.validate(cat); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *pfitzingerStrategy) Name() string { return Pfitzinger }

func (s *pfitzingerStrategy) EnhancePlan(p plan.Plan) (plan.Plan, error) {
	foundation, err := s.foundationPace(p.Config)
	if err != nil {
		return plan.Plan{}, err
	}
	out, err := enhancePlan(s, s.cat, p)
	if err != nil {
		return plan.Plan{}, err
	}
	for _, pw := range out.Workouts() {
		s.annotatePaces(&pw.Workout, foundation)
	}
	return out, nil
}

func (s *pfitzingerStrategy) CustomizeWorkout(w plan.Workout, phase plan.Phase, weekNumber int) plan.Workout {
	return s.customizeWorkout(w, phase, weekNumber)
}

func (s *pfitzingerStrategy) SelectWorkoutVariant(t plan.WorkoutType, phase plan.Phase, weekInPhase int) (string, error) {
	return s.selection.resolve(s.defaults, t, phase, weekInPhase)
}

func (s *pfitzingerStrategy) PhaseDistribution(phase plan.Phase) plan.IntensityDistribution {
	return s.phaseDistribution(phase)
}

func (s *pfitzingerStrategy) WorkoutEmphasis(t plan.WorkoutType) float64 {
	return s.workoutEmphasis(t)
}

// foundationPace returns the athlete's lactate-threshold pace in sec/km,
// deriving it from VDOT when no explicit pace is configured. Errors when the
// value is outside the valid range.
func (s *pfitzingerStrategy) foundationPace(cfg plan.Config) (float64, error) {
	pace := cfg.ThresholdPaceSecPerKm
	if pace == 0 && cfg.VDOT != 0 {
		v, err := vdot.LactateThresholdVelocity(cfg.VDOT)
		if err != nil {
			return 0, fmt.Errorf("%w: vdot %.1f", ErrFoundationOutOfRange, cfg.VDOT)
		}
		pace = 1000 / v
	}
	if pace < minThresholdPace || pace > maxThresholdPace {
		return 0, fmt.Errorf("%w: threshold pace %.0f sec/km (valid %.0f-%.0f)",
			ErrFoundationOutOfRange, pace, minThresholdPace, maxThresholdPace)
	}
	return pace, nil
}

// zonePace returns the pace range for a zone as an offset from the
// foundation pace, ±5 sec/km.
func zonePace(foundation float64, zone string) (plan.PaceRange, bool) {
	off, ok := pfitzingerZoneOffsets[zone]
	if !ok {
		return plan.PaceRange{}, false
	}
	center := foundation + off
	return plan.PaceRange{MinSecPerKm: center - 5, MaxSecPerKm: center + 5}, true
}

// annotatePaces attaches the offset-derived pace range to every segment.
func (s *pfitzingerStrategy) annotatePaces(w *plan.Workout, foundation float64) {
	for i := range w.Segments {
		seg := &w.Segments[i]
		if pr, ok := zonePace(foundation, seg.Zone); ok {
			seg.Pace = &pr
		} else if zd, found := s.cat.ZoneDefault(seg.Zone); found {
			s.log.Warn("no pace offset for zone, using generic zone default",
				"methodology", Pfitzinger, "zone", seg.Zone)
			seg.Description = zd.Description
		}
	}
}

// WeeklyStructure returns the canonical week pattern string for a phase.
func WeeklyStructure(phase plan.Phase) string {
	if s, ok := pfitzingerWeeklyStructure[phase]; ok {
		return s
	}
	return pfitzingerWeeklyStructure[plan.PhaseBase]
}

// PaceTable publishes the offset-derived zone paces for the plan report.
func (s *pfitzingerStrategy) PaceTable(cfg plan.Config) (map[string]string, error) {
	foundation, err := s.foundationPace(cfg)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(pfitzingerZoneOffsets))
	for zone := range pfitzingerZoneOffsets {
		pr, _ := zonePace(foundation, zone)
		out[zone] = formatPaceRange(pr)
	}
	return out, nil
}

// Guidance summarizes the methodology for downstream reporting.
func (s *pfitzingerStrategy) Guidance(cfg plan.Config) []string {
	out := []string{
		"All paces are offsets from your lactate-threshold pace; retest and every zone moves with it.",
		"Medium-long runs carry the aerobic load between quality days.",
	}
	for _, ph := range plan.AllPhases {
		out = append(out, fmt.Sprintf("%s week: %s", ph, WeeklyStructure(ph)))
	}
	return out
}
