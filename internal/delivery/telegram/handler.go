package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot             *tgbotapi.BotAPI
	logger          *zap.Logger
	userService     UserService
	wordService     WordService
	matchingService MatchingService
	progressService ProgressService
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	userService UserService,
	wordService WordService,
	matchingService MatchingService,
	progressService ProgressService,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		userService:     userService,
		wordService:     wordService,
		matchingService: matchingService,
		progressService: progressService,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	if err := h.userService.EnsureUser(ctx, from.ID, chatID); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if !update.Message.IsCommand() {
		_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
		return
	}

	args := update.Message.CommandArguments()

	switch update.Message.Command() {
	case "start":
		_ = h.send(newMessage(chatID, formatWelcome()))

	case "help":
		_ = h.send(newMessage(chatID, formatHelp()))

	case "add":
		_ = h.withErrorHandling(h.handleAdd(from.ID, args))(ctx, chatID)

	case "words":
		_ = h.withErrorHandling(h.handleWords(from.ID))(ctx, chatID)

	case "delete":
		_ = h.withErrorHandling(h.handleDelete(from.ID, args))(ctx, chatID)

	case "match":
		_ = h.withErrorHandling(h.handleMatch(from.ID))(ctx, chatID)

	case "progress":
		_ = h.withErrorHandling(h.handleProgress(from.ID))(ctx, chatID)

	default:
		_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
