package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/example/job-board/internal/app"
)

func main() {
	_ = godotenv.Load()

	application := fx.New(app.Module, app.EventLogger)

	startCtx := context.Background()
	if err := application.Start(startCtx); err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	if err := application.Stop(context.Background()); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
