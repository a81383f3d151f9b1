package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/raykavin/nexabot"
	"github.com/raykavin/nexabot/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "nexabot",
		Short:   "Telegram bot reporting the NEXA price and market cap",
		Version: "1.0.0",
		RunE:    run,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	// Optional .env next to the binary; absence is fine
	_ = godotenv.Load()

	settings, err := config.Load()
	if err != nil {
		return err
	}

	bot, err := nexabot.NewBot(settings)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return bot.Run(ctx)
}
