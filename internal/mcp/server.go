// Package mcp exposes plan generation to LLM assistants over the Model
// Context Protocol. The server is served on stdio only; there is no network
// surface.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/stride/internal/coach"
)

// New creates an MCP server with all tools and resources registered.
func New(c *coach.Coach, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Stride", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Stride training-plan generator. Generate multi-week endurance plans under a named coaching methodology (daniels, lydiard, pfitzinger) and inspect their intensity-distribution compliance."),
	)

	h := &handlers{coach: c, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolListMethodologies, Handler: h.listMethodologies},
		server.ServerTool{Tool: toolAnalyzeDistribution, Handler: h.analyzeDistribution},
	)

	s.AddResources(
		server.ServerResource{Resource: resMethodologies, Handler: h.methodologies},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	coach *coach.Coach
	log   *slog.Logger
}

var resMethodologies = mcp.NewResource(
	"stride://methodologies",
	"Coaching Methodologies",
	mcp.WithResourceDescription("Available coaching methodologies with their per-phase intensity-distribution targets"),
	mcp.WithMIMEType("application/json"),
)
