package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/internal/cli"
	"frontdesk/shared/logger"
	"frontdesk/shared/timezone"

	"github.com/fatih/color"
)

func main() {
	// logs go to stderr so -o json and -o yaml stay parseable
	logger.InitLoggerWithWriter(os.Stderr)

	cfg := config.Get()

	level := os.Getenv("FRONTDESK_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}

	logger.SetLogLevelFromString(level)

	timezone.Setup(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd := cli.NewRootCmd(di.InitializeCLI())

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint("Error:"), err)
		os.Exit(1)
	}
}
