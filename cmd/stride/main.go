package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/claude/stride/internal/coach"
	"github.com/claude/stride/internal/config"
	"github.com/claude/stride/internal/export"
	"github.com/claude/stride/internal/mcp"
	"github.com/claude/stride/internal/plan"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	methodologyFlag := flag.String("methodology", "", "coaching methodology (daniels, lydiard, pfitzinger)")
	weeks := flag.Int("weeks", 0, "plan length in weeks")
	vdotFlag := flag.Float64("vdot", 0, "athlete VDOT score (30-85)")
	thresholdPace := flag.Float64("threshold-pace", 0, "lactate-threshold pace in sec/km")
	days := flag.Int("days", 0, "training days per week (3-7)")
	raceDate := flag.String("race-date", "", "race date (YYYY-MM-DD)")
	format := flag.String("format", "", "output format: json, yaml, or text")
	outPath := flag.String("o", "", "output file (default stdout)")
	listMethodologies := flag.Bool("list", false, "list available methodologies and exit")
	serveMCP := flag.Bool("mcp", false, "serve the MCP server on stdio instead of generating once")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	c, err := coach.New(log)
	if err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(1)
	}

	if *listMethodologies {
		for _, id := range c.Registry().ListAvailable() {
			fmt.Println(id)
		}
		return
	}

	if *serveMCP {
		log.Info("Stride MCP server starting", "version", Version)
		if err := mcpserver.ServeStdio(mcp.New(c, Version, log)); err != nil {
			log.Error("mcp server error", "error", err)
			os.Exit(1)
		}
		return
	}

	cfg, outputFormat, outputPath, err := resolveConfig(*configPath, *methodologyFlag, *weeks, *vdotFlag, *thresholdPace, *days, *raceDate, *format, *outPath)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log.Info("Stride starting", "version", Version, "methodology", cfg.Methodology, "weeks", cfg.Weeks)

	p, err := c.Generate(cfg)
	if err != nil {
		log.Error("plan generation failed", "error", err)
		os.Exit(1)
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			log.Error("cannot create output file", "path", outputPath, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	if err := export.Write(out, p, outputFormat); err != nil {
		log.Error("export failed", "error", err)
		os.Exit(1)
	}
	if outputPath != "" {
		log.Info("plan written", "path", outputPath, "format", outputFormat)
	}
}

// resolveConfig merges the optional config file with command-line overrides;
// flags win.
func resolveConfig(path, methodology string, weeks int, vdot, thresholdPace float64, days int, raceDate, format, outPath string) (plan.Config, string, string, error) {
	var cfg plan.Config
	outputFormat := "text"
	outputPath := ""

	if path != "" {
		fileCfg, err := config.Load(path)
		if err != nil {
			return plan.Config{}, "", "", err
		}
		cfg, err = fileCfg.ToPlanConfig()
		if err != nil {
			return plan.Config{}, "", "", err
		}
		if fileCfg.Output.Format != "" {
			outputFormat = fileCfg.Output.Format
		}
		outputPath = fileCfg.Output.Path
	}

	if methodology != "" {
		cfg.Methodology = methodology
	}
	if weeks != 0 {
		cfg.Weeks = weeks
	}
	if vdot != 0 {
		cfg.VDOT = vdot
	}
	if thresholdPace != 0 {
		cfg.ThresholdPaceSecPerKm = thresholdPace
	}
	if days != 0 {
		cfg.DaysPerWeek = days
	}
	if raceDate != "" {
		t, err := time.Parse("2006-01-02", raceDate)
		if err != nil {
			return plan.Config{}, "", "", fmt.Errorf("parsing -race-date: %w", err)
		}
		cfg.RaceDate = t
	}
	if format != "" {
		outputFormat = format
	}
	if outPath != "" {
		outputPath = outPath
	}

	if cfg.Methodology == "" {
		return plan.Config{}, "", "", fmt.Errorf("a methodology is required (-methodology or config file)")
	}
	if cfg.Weeks == 0 {
		return plan.Config{}, "", "", fmt.Errorf("a plan length is required (-weeks or config file)")
	}
	return cfg, outputFormat, outputPath, nil
}
