package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	userID := cb.From.ID
	data := decodeCallback(cb.Data)

	var err error
	switch data.Action {
	case actionMatch:
		if len(data.Params) == 1 && data.Params[0] == matchNext {
			err = h.handleMatch(userID)(ctx, chatID)
		} else {
			err = h.handleMatchAnswer(ctx, cb, data)
		}

	case actionProgress:
		err = h.handleProgress(userID)(ctx, chatID)

	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
	}

	if err != nil {
		text, known := userMessage(err)
		if !known {
			h.logger.Error("callback error",
				zap.Int64("user_id", userID),
				zap.String("data", cb.Data),
				zap.Error(err),
			)
		}
		h.answerCallback(cb.ID, text)
		return
	}

	// Remove the user's "clock".
	h.answerCallback(cb.ID, "")
}

func (h *Handler) handleMatchAnswer(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) error {
	questionID, index, err := parseMatchAnswer(data)
	if err != nil {
		return err
	}

	res, err := h.matchingService.Answer(ctx, cb.From.ID, questionID, index)
	if err != nil {
		return err
	}

	edit := newEdit(cb.Message.Chat.ID, cb.Message.MessageID, formatAnswerFeedback(res))
	kb := buildMatchResultKeyboard()
	edit.ReplyMarkup = &kb

	return h.send(edit)
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}
