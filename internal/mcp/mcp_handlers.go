package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/artkessler/pulse/core"
	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	api     contract.HealthAPI
}

// daysFromRequest resolves the analysis window, falling back to the base config.
func (h *toolHandler) daysFromRequest(request mcp.CallToolRequest) (int, error) {
	days := request.GetInt("days", h.baseCfg.Days)
	if days <= 0 || days > contract.MaxDays {
		return 0, fmt.Errorf("days must be between 1 and %d (received %d)", contract.MaxDays, days)
	}
	return days, nil
}

func (h *toolHandler) handleGetSleep(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days, err := h.daysFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid sleep parameters: %v", err)), nil
	}

	window, err := core.FetchWindow(ctx, h.api, days, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("sleep fetch failed: %v", err)), nil
	}

	rows := core.BuildDayScores(window, time.Now())
	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetReadiness(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days, err := h.daysFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid readiness parameters: %v", err)), nil
	}

	window, err := core.FetchWindow(ctx, h.api, days, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("readiness fetch failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(window.Readiness, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetWeeklyReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days, err := h.daysFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid report parameters: %v", err)), nil
	}

	_, summary, err := core.BuildWeeklyReport(ctx, h.api, days, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetStressSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days, err := h.daysFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid stress parameters: %v", err)), nil
	}

	window, err := core.FetchWindow(ctx, h.api, days, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("stress fetch failed: %v", err)), nil
	}

	summary := core.SummarizeWeeklyStress(window.Sleep, window.Readiness, window.Stress)
	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetAlerts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days, err := h.daysFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid alert parameters: %v", err)), nil
	}

	thresholds := schema.AlertThresholds{
		Readiness:  request.GetFloat("readiness_threshold", h.baseCfg.ReadinessThreshold),
		Efficiency: request.GetFloat("efficiency_threshold", h.baseCfg.EfficiencyThreshold),
		SleepHours: request.GetFloat("sleep_threshold", h.baseCfg.SleepHoursThreshold),
	}

	alerts, err := core.BuildAlerts(ctx, h.api, days, time.Now(), thresholds)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("alert check failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(alerts, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetBriefing(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := request.GetString("date", "")
	if date == "" {
		return mcp.NewToolResultError("date is required (YYYY-MM-DD)"), nil
	}
	if _, err := time.Parse(contract.DateFormat, date); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date '%s'. Expected YYYY-MM-DD", date)), nil
	}

	baselineDays := request.GetInt("baseline_days", h.baseCfg.BaselineDays)
	if baselineDays <= 0 || baselineDays > contract.MaxBaselineDays {
		return mcp.NewToolResultError(fmt.Sprintf("baseline_days must be between 1 and %d (received %d)", contract.MaxBaselineDays, baselineDays)), nil
	}

	briefing, err := core.BuildBriefingForDate(ctx, h.api, date, baselineDays)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("briefing failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(briefing, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
