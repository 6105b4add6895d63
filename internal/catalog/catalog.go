// Package catalog holds the workout template catalog: named workout
// blueprints keyed by semantic type, loaded from an embedded YAML file.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/claude/stride/internal/plan"
)

//go:embed templates.yaml
var templatesYAML []byte

// ErrNoTemplate is returned when no template exists for a requested type.
var ErrNoTemplate = errors.New("no template for workout type")

// SegmentSpec is one segment of a template blueprint.
type SegmentSpec struct {
	DurationMin float64 `yaml:"duration_min"`
	Intensity   float64 `yaml:"intensity"`
	Zone        string  `yaml:"zone"`
	Description string  `yaml:"description,omitempty"`
}

// Template is a named workout blueprint.
type Template struct {
	ID               string           `yaml:"id"`
	Name             string           `yaml:"name"`
	Type             plan.WorkoutType `yaml:"type"`
	Segments         []SegmentSpec    `yaml:"segments"`
	AdaptationTarget string           `yaml:"adaptation_target,omitempty"`
	TSS              float64          `yaml:"tss"`
	RecoveryHours    float64          `yaml:"recovery_hours"`
}

// Instantiate builds a concrete Workout from the template.
func (t Template) Instantiate() plan.Workout {
	w := plan.Workout{
		Type:             t.Type,
		Name:             t.Name,
		AdaptationTarget: t.AdaptationTarget,
		EstimatedTSS:     t.TSS,
		RecoveryHours:    t.RecoveryHours,
		Segments:         make([]plan.Segment, len(t.Segments)),
	}
	for i, s := range t.Segments {
		w.Segments[i] = plan.Segment{
			DurationMin: s.DurationMin,
			Intensity:   s.Intensity,
			Zone:        s.Zone,
			Description: s.Description,
		}
	}
	return w
}

// ZoneDefault is the generic fallback for a named zone when a methodology has
// no explicit mapping.
type ZoneDefault struct {
	Intensity   float64 `yaml:"intensity"`
	Description string  `yaml:"description"`
}

type catalogFile struct {
	Templates []Template             `yaml:"templates"`
	Zones     map[string]ZoneDefault `yaml:"zones"`
}

// Catalog indexes workout templates by semantic type.
type Catalog struct {
	byType map[plan.WorkoutType][]Template
	zones  map[string]ZoneDefault
}

// Load parses the embedded template catalog.
func Load() (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(templatesYAML, &f); err != nil {
		return nil, fmt.Errorf("parsing template catalog: %w", err)
	}
	c := &Catalog{
		byType: make(map[plan.WorkoutType][]Template),
		zones:  f.Zones,
	}
	for _, t := range f.Templates {
		if t.ID == "" || len(t.Segments) == 0 {
			return nil, fmt.Errorf("template %q (%s): id and segments are required", t.Name, t.Type)
		}
		c.byType[t.Type] = append(c.byType[t.Type], t)
	}
	return c, nil
}

// Lookup returns all templates for a type, in catalog order.
func (c *Catalog) Lookup(t plan.WorkoutType) ([]Template, error) {
	ts, ok := c.byType[t]
	if !ok || len(ts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTemplate, t)
	}
	return ts, nil
}

// Variant returns the template with the given id for a type.
func (c *Catalog) Variant(t plan.WorkoutType, id string) (Template, error) {
	ts, err := c.Lookup(t)
	if err != nil {
		return Template{}, err
	}
	for _, tpl := range ts {
		if tpl.ID == id {
			return tpl, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %s variant %q", ErrNoTemplate, t, id)
}

// VariantByID finds a template by its unique id, regardless of type.
// Selection rules may substitute across types (e.g. a threshold request
// resolving to a tempo variant), so resolution cannot assume the type.
func (c *Catalog) VariantByID(id string) (Template, error) {
	for _, ts := range c.byType {
		for _, tpl := range ts {
			if tpl.ID == id {
				return tpl, nil
			}
		}
	}
	return Template{}, fmt.Errorf("%w: variant %q", ErrNoTemplate, id)
}

// Types lists every workout type present in the catalog.
func (c *Catalog) Types() []plan.WorkoutType {
	out := make([]plan.WorkoutType, 0, len(c.byType))
	for t := range c.byType {
		out = append(out, t)
	}
	return out
}

// ZoneDefault returns the generic fallback for a named zone.
func (c *Catalog) ZoneDefault(zone string) (ZoneDefault, bool) {
	z, ok := c.zones[zone]
	return z, ok
}
