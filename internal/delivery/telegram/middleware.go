package telegram

import (
	"context"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling reports errors to the user. Unexpected ones are logged.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			text, known := userMessage(err)
			if !known {
				h.logger.Error("handle error",
					zap.Int64("chat_id", chatID),
					zap.Error(err),
				)
			}
			_ = h.send(newPlainMessage(chatID, text))
		}
		return nil
	}
}
