package plan

// Report is the enforcement metadata attached to an enhanced plan: how the
// plan actually distributes intensity, what could not be corrected, and a
// 0–100 compliance score.
type Report struct {
	Overall         IntensityDistribution `json:"overall" yaml:"overall"`
	PerPhase        []PhaseSummary        `json:"per_phase,omitempty" yaml:"per_phase,omitempty"`
	Violations      []Violation           `json:"violations,omitempty" yaml:"violations,omitempty"`
	Recommendations []string              `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	ComplianceScore float64               `json:"compliance_score" yaml:"compliance_score"`
	Iterations      int                   `json:"iterations" yaml:"iterations"`
	PaceTable       map[string]string     `json:"pace_table,omitempty" yaml:"pace_table,omitempty"`
}

// Clone returns a deep copy of the report.
func (r Report) Clone() Report {
	out := r
	out.PerPhase = make([]PhaseSummary, len(r.PerPhase))
	copy(out.PerPhase, r.PerPhase)
	out.Violations = make([]Violation, len(r.Violations))
	copy(out.Violations, r.Violations)
	out.Recommendations = make([]string, len(r.Recommendations))
	copy(out.Recommendations, r.Recommendations)
	if r.PaceTable != nil {
		out.PaceTable = make(map[string]string, len(r.PaceTable))
		for k, v := range r.PaceTable {
			out.PaceTable[k] = v
		}
	}
	return out
}
