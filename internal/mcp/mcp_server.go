// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the pulse MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, api contract.HealthAPI) *server.MCPServer {
	s := server.NewMCPServer(
		"Pulse Health Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		api:     api,
	}

	// --- 1. Tool: get_sleep ---
	s.AddTool(mcp.NewTool("get_sleep",
		mcp.WithDescription("Fetch per-day sleep scores with efficiency, duration, HRV and resting heart rate."),
		mcp.WithNumber("days", mcp.Description("Trailing window in days (defaults to the configured window).")),
	), h.handleGetSleep)

	// --- 2. Tool: get_readiness ---
	s.AddTool(mcp.NewTool("get_readiness",
		mcp.WithDescription("Fetch raw daily readiness records with contributor breakdowns."),
		mcp.WithNumber("days", mcp.Description("Trailing window in days.")),
	), h.handleGetReadiness)

	// --- 3. Tool: get_weekly_report ---
	s.AddTool(mcp.NewTool("get_weekly_report",
		mcp.WithDescription("Aggregate sleep, readiness and stress over a trailing window into a weekly report."),
		mcp.WithNumber("days", mcp.Description("Trailing window in days.")),
	), h.handleGetWeeklyReport)

	// --- 4. Tool: get_stress_summary ---
	s.AddTool(mcp.NewTool("get_stress_summary",
		mcp.WithDescription("Summarize per-day stress scores, deriving a proxy from recovery signals when the device reports none."),
		mcp.WithNumber("days", mcp.Description("Trailing window in days.")),
	), h.handleGetStressSummary)

	// --- 5. Tool: get_alerts ---
	s.AddTool(mcp.NewTool("get_alerts",
		mcp.WithDescription("Flag days whose readiness, sleep efficiency or sleep duration fall below thresholds."),
		mcp.WithNumber("days", mcp.Description("Trailing window in days.")),
		mcp.WithNumber("readiness_threshold", mcp.Description("Readiness score cutoff (defaults to the configured threshold).")),
		mcp.WithNumber("efficiency_threshold", mcp.Description("Sleep efficiency percentage cutoff.")),
		mcp.WithNumber("sleep_threshold", mcp.Description("Sleep duration cutoff in hours.")),
	), h.handleGetAlerts)

	// --- 6. Tool: get_briefing ---
	s.AddTool(mcp.NewTool("get_briefing",
		mcp.WithDescription("Build a morning briefing for one date, with deltas against a trailing baseline."),
		mcp.WithString("date", mcp.Description("Target date in YYYY-MM-DD form."), mcp.Required()),
		mcp.WithNumber("baseline_days", mcp.Description("Baseline window in days (defaults to the configured window).")),
	), h.handleGetBriefing)

	return s
}

// StartMCPServer starts the pulse MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, api contract.HealthAPI) error {
	s := NewMCPServer(baseCfg, api)
	return server.ServeStdio(s)
}
