package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/artkessler/pulse/internal/telegram"
	"github.com/spf13/cobra"
)

// botCmd runs the Telegram bot until interrupted.
var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot.",
	Long: `Start a long-polling Telegram bot that answers health queries in chat.

Supported commands: /sleep /readiness /report /stress /alerts /help.

Requires TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID to be configured.

Examples:
  # Run until Ctrl+C
  pulse bot`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := cfg.RequireTelegram(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt)
		defer stop()

		client := telegram.NewClient(telegram.DefaultBaseURL, cfg.TelegramToken, cfg.TelegramChatID)
		bot := telegram.NewBot(client, api, cfg)

		fmt.Fprintln(os.Stderr, "Bot started. Press Ctrl+C to stop.")
		return bot.Run(ctx)
	},
}
