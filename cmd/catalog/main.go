package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookcatalog/internal/config"
)

func main() {
	config.LoadEnvFiles()
	cfg := config.Load(time.Now())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
