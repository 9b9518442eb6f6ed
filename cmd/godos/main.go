package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gordian-engine/godos/cmd/godos/internal/godoscmd"
	"github.com/gordian-engine/godos/odnet"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := godoscmd.NewRootCmd(log, odnet.InsecureDialer{}).ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
