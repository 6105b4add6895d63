package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/stride/internal/plan"
)

// --- Tool definitions ---

var toolGeneratePlan = mcp.NewTool("generate_plan",
	mcp.WithDescription("Generate a multi-week endurance training plan customized to a coaching methodology. Returns the full plan including per-workout segments, paces, and the intensity-distribution compliance report."),
	mcp.WithString("methodology", mcp.Required(), mcp.Description("Coaching methodology"), mcp.Enum("daniels", "lydiard", "pfitzinger")),
	mcp.WithNumber("weeks", mcp.Required(), mcp.Description("Plan length in weeks (4-52)")),
	mcp.WithNumber("vdot", mcp.Description("Athlete VDOT score (30-85). Required for daniels; optional for pfitzinger when threshold_pace is given.")),
	mcp.WithNumber("threshold_pace", mcp.Description("Lactate-threshold pace in seconds per km. Used by pfitzinger.")),
	mcp.WithNumber("days_per_week", mcp.Description("Training days per week (3-7). Defaults to 5.")),
	mcp.WithString("race_date", mcp.Description("Race date (YYYY-MM-DD). The plan ends on race day.")),
)

var toolListMethodologies = mcp.NewTool("list_methodologies",
	mcp.WithDescription("List the available coaching methodologies with their per-phase intensity targets."),
)

var toolAnalyzeDistribution = mcp.NewTool("analyze_distribution",
	mcp.WithDescription("Generate a plan and return only its intensity-distribution report: measured easy/moderate/hard split, violations, compliance score, and recommendations."),
	mcp.WithString("methodology", mcp.Required(), mcp.Description("Coaching methodology"), mcp.Enum("daniels", "lydiard", "pfitzinger")),
	mcp.WithNumber("weeks", mcp.Required(), mcp.Description("Plan length in weeks (4-52)")),
	mcp.WithNumber("vdot", mcp.Description("Athlete VDOT score (30-85)")),
	mcp.WithNumber("threshold_pace", mcp.Description("Lactate-threshold pace in seconds per km")),
)

// --- Tool handlers ---

func (h *handlers) requestConfig(req mcp.CallToolRequest) (plan.Config, *mcp.CallToolResult) {
	meth, err := req.RequireString("methodology")
	if err != nil {
		return plan.Config{}, mcp.NewToolResultError("methodology parameter is required")
	}
	weeks, err := req.RequireFloat("weeks")
	if err != nil {
		return plan.Config{}, mcp.NewToolResultError("weeks parameter is required")
	}

	cfg := plan.Config{
		Methodology:           meth,
		Weeks:                 int(weeks),
		VDOT:                  req.GetFloat("vdot", 0),
		ThresholdPaceSecPerKm: req.GetFloat("threshold_pace", 0),
		DaysPerWeek:           int(req.GetFloat("days_per_week", 0)),
	}
	if raceDate := req.GetString("race_date", ""); raceDate != "" {
		t, err := time.Parse("2006-01-02", raceDate)
		if err != nil {
			return plan.Config{}, mcp.NewToolResultError("invalid race_date, want YYYY-MM-DD: " + err.Error())
		}
		cfg.RaceDate = t
	}
	return cfg, nil
}

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, errResult := h.requestConfig(req)
	if errResult != nil {
		return errResult, nil
	}

	p, err := h.coach.Generate(cfg)
	if err != nil {
		h.log.Error("mcp generate_plan", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(p)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listMethodologies(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(methodologySummaries(h.coach))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) analyzeDistribution(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, errResult := h.requestConfig(req)
	if errResult != nil {
		return errResult, nil
	}

	p, err := h.coach.Generate(cfg)
	if err != nil {
		h.log.Error("mcp analyze_distribution", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(p.Report)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// --- Resource handlers ---

func (h *handlers) methodologies(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(methodologySummaries(h.coach))
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
