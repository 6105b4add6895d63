package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/claude/stride/internal/methodology"
	"github.com/claude/stride/internal/plan"
)

type Config struct {
	Athlete AthleteConfig `yaml:"athlete"`
	Plan    PlanConfig    `yaml:"plan"`
	Output  OutputConfig  `yaml:"output"`
}

type AthleteConfig struct {
	VDOT                  float64 `yaml:"vdot"`
	ThresholdPaceSecPerKm float64 `yaml:"threshold_pace_sec_per_km"`
}

type PlanConfig struct {
	Methodology     string  `yaml:"methodology"`
	Weeks           int     `yaml:"weeks"`
	DaysPerWeek     int     `yaml:"days_per_week"`
	RaceDistanceKm  float64 `yaml:"race_distance_km"`
	RaceDate        string  `yaml:"race_date"` // YYYY-MM-DD
	IncludeRecovery bool    `yaml:"include_recovery"`
}

type OutputConfig struct {
	Format string `yaml:"format"` // json, yaml, or text
	Path   string `yaml:"path"`   // empty means stdout
}

// ParsedRaceDate returns the race date as a time, or the zero time when
// unset.
func (p PlanConfig) ParsedRaceDate() (time.Time, error) {
	if p.RaceDate == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", p.RaceDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing race_date %q: %w", p.RaceDate, err)
	}
	return t, nil
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix STRIDE_ and underscore-separated paths:
//
//	STRIDE_ATHLETE_VDOT, STRIDE_ATHLETE_THRESHOLD_PACE,
//	STRIDE_PLAN_METHODOLOGY, STRIDE_PLAN_WEEKS, STRIDE_PLAN_DAYS_PER_WEEK,
//	STRIDE_PLAN_RACE_DATE, STRIDE_OUTPUT_FORMAT, STRIDE_OUTPUT_PATH
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STRIDE_ATHLETE_VDOT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Athlete.VDOT = f
		}
	}
	if v := os.Getenv("STRIDE_ATHLETE_THRESHOLD_PACE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Athlete.ThresholdPaceSecPerKm = f
		}
	}
	if v := os.Getenv("STRIDE_PLAN_METHODOLOGY"); v != "" {
		cfg.Plan.Methodology = v
	}
	if v := os.Getenv("STRIDE_PLAN_WEEKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Plan.Weeks = n
		}
	}
	if v := os.Getenv("STRIDE_PLAN_DAYS_PER_WEEK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Plan.DaysPerWeek = n
		}
	}
	if v := os.Getenv("STRIDE_PLAN_RACE_DATE"); v != "" {
		cfg.Plan.RaceDate = v
	}
	if v := os.Getenv("STRIDE_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("STRIDE_OUTPUT_PATH"); v != "" {
		cfg.Output.Path = v
	}
}

func (c *Config) validate() error {
	if c.Plan.Methodology == "" {
		return fmt.Errorf("plan.methodology is required")
	}
	if c.Plan.Weeks == 0 {
		return fmt.Errorf("plan.weeks is required")
	}
	// Lydiard prescribes by effort and needs no foundation value; the
	// pace-based methodologies need one of the two.
	switch c.Plan.Methodology {
	case methodology.Daniels, methodology.Pfitzinger:
		if c.Athlete.VDOT == 0 && c.Athlete.ThresholdPaceSecPerKm == 0 {
			return fmt.Errorf("one of athlete.vdot or athlete.threshold_pace_sec_per_km is required for %s", c.Plan.Methodology)
		}
	}
	if _, err := c.Plan.ParsedRaceDate(); err != nil {
		return err
	}
	switch c.Output.Format {
	case "", "json", "yaml", "text":
	default:
		return fmt.Errorf("output.format %q: must be json, yaml, or text", c.Output.Format)
	}
	return nil
}

// ToPlanConfig converts the file config into the engine's generation request.
func (c *Config) ToPlanConfig() (plan.Config, error) {
	raceDate, err := c.Plan.ParsedRaceDate()
	if err != nil {
		return plan.Config{}, err
	}
	return plan.Config{
		Methodology:           c.Plan.Methodology,
		VDOT:                  c.Athlete.VDOT,
		ThresholdPaceSecPerKm: c.Athlete.ThresholdPaceSecPerKm,
		Weeks:                 c.Plan.Weeks,
		DaysPerWeek:           c.Plan.DaysPerWeek,
		RaceDistanceKm:        c.Plan.RaceDistanceKm,
		RaceDate:              raceDate,
		IncludeRecovery:       c.Plan.IncludeRecovery,
	}, nil
}
