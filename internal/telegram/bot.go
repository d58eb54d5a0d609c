package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/artkessler/pulse/core"
	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/schema"
)

// pollTimeoutSeconds is the long-poll timeout passed to getUpdates.
const pollTimeoutSeconds = 30

// pollRetryDelay spaces out retries after a failed poll.
const pollRetryDelay = 5 * time.Second

const helpText = `*pulse bot*
/sleep - per-day sleep scores
/readiness - per-day readiness scores
/report - weekly report
/stress - weekly stress summary
/alerts - threshold alerts
/help - this message`

// Bot answers chat commands with summaries built from provider data.
type Bot struct {
	client *Client
	api    contract.HealthAPI
	cfg    *contract.Config
	now    func() time.Time
}

// NewBot builds a bot around a chat client and a provider API.
func NewBot(client *Client, api contract.HealthAPI, cfg *contract.Config) *Bot {
	return &Bot{
		client: client,
		api:    api,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Run long-polls for commands until the context is canceled. Poll failures
// are logged and retried, never fatal.
func (b *Bot) Run(ctx context.Context) error {
	var offset int64
	for {
		updates, err := b.client.GetUpdates(ctx, offset, pollTimeoutSeconds)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			contract.LogWarn("polling updates", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(pollRetryDelay):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			if u.Message == nil || u.Message.Text == "" {
				continue
			}

			reply := b.HandleCommand(ctx, u.Message.Text)
			if reply == "" {
				continue
			}
			chatID := strconv.FormatInt(u.Message.Chat.ID, 10)
			if err := b.client.SendMessageTo(ctx, chatID, reply); err != nil {
				contract.LogWarn("sending reply", err)
			}
		}
	}
}

// HandleCommand maps one chat command to its rendered reply.
func (b *Bot) HandleCommand(ctx context.Context, text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	// Group chats suffix commands with the bot name, e.g. /sleep@pulse_bot.
	cmd := strings.ToLower(strings.SplitN(fields[0], "@", 2)[0])

	switch cmd {
	case "/start", "/help":
		return helpText
	case "/sleep":
		return b.sleepReply(ctx)
	case "/readiness":
		return b.readinessReply(ctx)
	case "/report":
		return b.reportReply(ctx)
	case "/stress":
		return b.stressReply(ctx)
	case "/alerts":
		return b.alertsReply(ctx)
	default:
		return "Unknown command. Send /help for the list."
	}
}

func (b *Bot) sleepReply(ctx context.Context) string {
	window, err := core.FetchWindow(ctx, b.api, b.cfg.Days, b.now())
	if err != nil {
		return errorReply(err)
	}
	return FormatSleepDays(core.BuildDayScores(window, b.now()))
}

func (b *Bot) readinessReply(ctx context.Context) string {
	window, err := core.FetchWindow(ctx, b.api, b.cfg.Days, b.now())
	if err != nil {
		return errorReply(err)
	}
	return FormatReadinessDays(core.BuildDayScores(window, b.now()))
}

func (b *Bot) reportReply(ctx context.Context) string {
	_, summary, err := core.BuildWeeklyReport(ctx, b.api, b.cfg.Days, b.now())
	if err != nil {
		return errorReply(err)
	}
	return FormatWeeklySummary(summary)
}

func (b *Bot) stressReply(ctx context.Context) string {
	window, err := core.FetchWindow(ctx, b.api, b.cfg.Days, b.now())
	if err != nil {
		return errorReply(err)
	}
	summary := core.SummarizeWeeklyStress(window.Sleep, window.Readiness, window.Stress)
	return FormatStressSummary(&summary)
}

func (b *Bot) alertsReply(ctx context.Context) string {
	thresholds := schema.AlertThresholds{
		Readiness:  b.cfg.ReadinessThreshold,
		Efficiency: b.cfg.EfficiencyThreshold,
		SleepHours: b.cfg.SleepHoursThreshold,
	}
	alerts, err := core.BuildAlerts(ctx, b.api, b.cfg.Days, b.now(), thresholds)
	if err != nil {
		return errorReply(err)
	}
	return FormatAlerts(alerts)
}

// errorReply renders a fetch failure as a chat message instead of killing
// the poll loop.
func errorReply(err error) string {
	return fmt.Sprintf("⚠️ Could not fetch data: %v", err)
}
