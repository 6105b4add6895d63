package methodology

import (
	"fmt"

	"github.com/claude/stride/internal/catalog"
	"github.com/claude/stride/internal/plan"
)

// easiestVariant is the variant every request collapses to during the
// recovery phase.
const easiestVariant = "recovery_jog"

// selectionKey addresses one substitution rule.
type selectionKey struct {
	Type  plan.WorkoutType
	Phase plan.Phase
}

// rule resolves a variant id from the 1-based week within the phase.
type rule func(weekInPhase int) string

// fixed always resolves to the same variant.
func fixed(id string) rule {
	return func(int) string { return id }
}

// unlockAfter substitutes `before` through the unlock week (inclusive), then
// alternates among `after` variants week by week for training variety.
func unlockAfter(unlockWeek int, before string, after ...string) rule {
	return func(weekInPhase int) string {
		if weekInPhase <= unlockWeek {
			return before
		}
		return after[(weekInPhase-unlockWeek-1)%len(after)]
	}
}

// alternate cycles among variants week by week.
func alternate(variants ...string) rule {
	return func(weekInPhase int) string {
		return variants[(weekInPhase-1)%len(variants)]
	}
}

// selectionTable is a strategy's explicit (type, phase) substitution matrix.
// Absence of a rule falls back to the default first-variant selection.
type selectionTable map[selectionKey]rule

// resolve applies the recovery-phase collapse, then the table, then the
// default selection. It never fails silently: an unknown type surfaces the
// catalog's ErrNoTemplate.
func (t selectionTable) resolve(d defaults, typ plan.WorkoutType, phase plan.Phase, weekInPhase int) (string, error) {
	if phase == plan.PhaseRecovery {
		return easiestVariant, nil
	}
	if r, ok := t[selectionKey{typ, phase}]; ok {
		return r(weekInPhase), nil
	}
	return d.selectVariant(typ)
}

// validate exercises every rule across a representative week range and
// checks each resolved variant exists in the catalog. Run at strategy
// construction so table gaps are configuration errors, not runtime surprises.
func (t selectionTable) validate(cat *catalog.Catalog) error {
	for key, r := range t {
		for week := 1; week <= 12; week++ {
			id := r(week)
			if _, err := cat.VariantByID(id); err != nil {
				return fmt.Errorf("rule (%s, %s) week %d: %w", key.Type, key.Phase, week, err)
			}
		}
	}
	if _, err := cat.VariantByID(easiestVariant); err != nil {
		return fmt.Errorf("recovery collapse target: %w", err)
	}
	return nil
}
