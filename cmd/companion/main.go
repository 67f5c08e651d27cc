// Package main boots the Project Iris companion service and wires application dependencies.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	adkagent "google.golang.org/adk/agent"
	"google.golang.org/adk/cmd/launcher"
	"google.golang.org/adk/cmd/launcher/full"
	"google.golang.org/adk/session/database"
	"gorm.io/driver/postgres"

	internalagent "github.com/easeaico/project-iris/internal/agent"
	"github.com/easeaico/project-iris/internal/config"
	"github.com/easeaico/project-iris/internal/memory"
	"github.com/easeaico/project-iris/internal/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)
	slog.Info("slog logger initialized", "level", "debug")

	cfg := config.Load()
	slog.Info("configuration loaded", "provider", cfg.ModelProvider, "chat_model", cfg.ChatModel, "memory_model", cfg.MemoryModel, "image_model", cfg.ImageModel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close()

	embedder, err := memory.NewEmbedder(ctx, cfg.GoogleAPIKey, cfg.EmbeddingModel)
	if err != nil {
		log.Fatalf("failed to create embedder: %v", err)
	}

	memoryModel, err := internalagent.NewModel(ctx, &cfg, cfg.MemoryModel)
	if err != nil {
		log.Fatalf("failed to create memory model: %v", err)
	}

	summarizer, err := memory.NewMomentSummarizer(ctx, memoryModel)
	if err != nil {
		log.Fatalf("failed to create moment summarizer: %v", err)
	}

	moodProvider := storage.NewMoodStateProvider(store.Characters, cfg.CharacterID)
	memoryService := memory.NewService(embedder, store.Moments, store.ChatWindows, summarizer, moodProvider, cfg.TopK, cfg.SimilarityThreshold, cfg.WindowSize)

	sessionService, err := database.NewSessionService(postgres.Open(cfg.DatabaseURL))
	if err != nil {
		log.Fatalf("failed to create session service: %v", err)
	}

	llmAgent, err := internalagent.NewCompanionAgent(ctx, &cfg, store, sessionService, memoryService)
	if err != nil {
		log.Fatalf("Failed to initialize agent: %v", err)
	}

	launcherConfig := &launcher.Config{
		SessionService: sessionService,
		MemoryService:  memoryService,
		AgentLoader:    adkagent.NewSingleLoader(llmAgent),
	}

	l := full.NewLauncher()
	errCh := make(chan error, 1)
	go func() {
		slog.Info("launcher starting")
		errCh <- l.Execute(ctx, launcherConfig, os.Args[1:])
	}()

	var execErr error
	select {
	case execErr = <-errCh:
	case <-ctx.Done():
		fmt.Println("\nshutting down...")
	}

	if execErr != nil {
		if execErr != context.Canceled && execErr != context.DeadlineExceeded {
			log.Fatalf("Failed to run agent: %v\n\n%s", execErr, l.CommandLineSyntax())
		}
	}

	fmt.Println("Agent shutdown complete")
}
