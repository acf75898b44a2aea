package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-match-bot/internal/config"
	"github.com/aliskhannn/vocab-match-bot/internal/delivery/telegram"
	"github.com/aliskhannn/vocab-match-bot/internal/infra/postgres"
	"github.com/aliskhannn/vocab-match-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/vocab-match-bot/internal/logger"
	"github.com/aliskhannn/vocab-match-bot/internal/service"
	"github.com/aliskhannn/vocab-match-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "add", Description: "Add a word (usage: /add word - translation)"},
		{Command: "words", Description: "List your dictionary"},
		{Command: "delete", Description: "Delete a word (usage: /delete N)"},
		{Command: "match", Description: "Match a word with its translation"},
		{Command: "progress", Description: "Show progress"},
		{Command: "help", Description: "Help"},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	bot.Debug = cfg.Env != "production"
	lg.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn, err := cfg.DB.DSN()
	if err != nil {
		lg.Fatal("database is not configured", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Initialize repositories and services.
	userRepo := repository.NewUserRepository(pool)
	wordRepo := repository.NewWordRepository(pool)
	answerRepo := repository.NewAnswerRepository(pool)
	transactor := postgres.NewTransactor(pool)
	questions := storage.NewQuestionStorage()

	userService := service.NewUserService(userRepo)
	wordService := service.NewWordService(wordRepo, cfg.Matching.Language)
	progressService := service.NewProgressService(wordRepo)
	matchingService := service.NewMatchingService(
		wordRepo,
		answerRepo,
		transactor,
		questions,
		service.NewCandidateGenerator(nil),
		cfg.Matching.Choices,
		lg,
	)

	go expireQuestions(ctx, questions, cfg.Matching.QuestionTTL, lg)

	handler := telegram.NewHandler(
		bot,
		lg,
		userService,
		wordService,
		matchingService,
		progressService,
	)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		lg.Error("telegram handler failed", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}

// expireQuestions drops questions nobody answered within ttl.
func expireQuestions(ctx context.Context, questions *storage.QuestionStorage, ttl time.Duration, lg *zap.Logger) {
	if ttl <= 0 {
		return
	}

	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := questions.DeleteOlderThan(now.Add(-ttl)); n > 0 {
				lg.Debug("expired matching questions", zap.Int("count", n))
			}
		}
	}
}
