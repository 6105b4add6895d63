// Package export renders a generated plan and its enforcement report as
// JSON, YAML, or a human-readable week-by-week text schedule.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/claude/stride/internal/plan"
)

// Write renders the plan in the given format (json, yaml, or text).
func Write(w io.Writer, p plan.Plan, format string) error {
	switch format {
	case "", "json":
		return writeJSON(w, p)
	case "yaml":
		return writeYAML(w, p)
	case "text":
		return writeText(w, p)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeJSON(w io.Writer, p plan.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding plan as JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, p plan.Plan) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding plan as YAML: %w", err)
	}
	return nil
}

func writeText(w io.Writer, p plan.Plan) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Training plan · %s · %d weeks\n", p.Config.Methodology, p.Config.Weeks)
	if !p.Config.RaceDate.IsZero() {
		fmt.Fprintf(&b, "Race day: %s\n", p.Config.RaceDate.Format("Mon 02 Jan 2006"))
	}
	b.WriteString("\n")

	for _, blk := range p.Blocks {
		fmt.Fprintf(&b, "=== %s (weeks %d-%d)", strings.ToUpper(string(blk.Phase)), blk.StartWeek, blk.EndWeek)
		if blk.Target != nil {
			fmt.Fprintf(&b, "  target %.0f/%.0f/%.0f", blk.Target.Easy, blk.Target.Moderate, blk.Target.Hard)
		}
		b.WriteString("\n")
		for _, mc := range blk.Microcycles {
			fmt.Fprintf(&b, "Week %d\n", mc.Week)
			for _, pw := range mc.Workouts {
				fmt.Fprintf(&b, "  %s  %-28s %5.0f min",
					pw.Date.Format("Mon 02 Jan"), pw.Workout.Name, pw.TargetDurationMin)
				if pace := primaryPace(pw.Workout); pace != "" {
					fmt.Fprintf(&b, "  %s", pace)
				}
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if p.Report != nil {
		writeReport(&b, *p.Report)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeReport(b *strings.Builder, r plan.Report) {
	fmt.Fprintf(b, "--- Report ---\n")
	fmt.Fprintf(b, "Distribution: easy %.1f%% · moderate %.1f%% · hard %.1f%%\n",
		r.Overall.Easy, r.Overall.Moderate, r.Overall.Hard)
	fmt.Fprintf(b, "Compliance score: %.1f/100 (%d correction pass(es))\n", r.ComplianceScore, r.Iterations)
	for _, v := range r.Violations {
		fmt.Fprintf(b, "Violation [%s] %s in %s: %.1f%% vs target %.1f%%\n",
			v.Severity, v.Kind, v.Scope, v.Actual, v.Target)
	}
	if len(r.PaceTable) > 0 {
		b.WriteString("Paces:\n")
		for _, zone := range []string{"recovery", "easy", "steady", "marathon", "tempo", "threshold", "interval", "repetition"} {
			if pace, ok := r.PaceTable[zone]; ok {
				fmt.Fprintf(b, "  %-10s %s\n", zone, pace)
			}
		}
	}
	for _, rec := range r.Recommendations {
		fmt.Fprintf(b, "- %s\n", rec)
	}
}

// primaryPace returns the pace of the workout's longest segment, the one an
// athlete would ask about first.
func primaryPace(w plan.Workout) string {
	var longest plan.Segment
	for _, s := range w.Segments {
		if s.DurationMin > longest.DurationMin {
			longest = s
		}
	}
	if longest.Pace == nil {
		return ""
	}
	return fmt.Sprintf("%s-%s /km",
		formatPace(longest.Pace.MinSecPerKm), formatPace(longest.Pace.MaxSecPerKm))
}

func formatPace(secPerKm float64) string {
	total := int(secPerKm + 0.5)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
