package telegram

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

func (h *Handler) handleAdd(userID int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		w, err := h.wordService.AddPair(ctx, userID, args)
		if err != nil {
			return err
		}

		h.logger.Debug("word added",
			zap.Int64("user_id", userID),
			zap.String("word_id", w.ID.String()),
		)

		return h.send(newMessage(chatID, formatWordAdded(w)))
	}
}

func (h *Handler) handleWords(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		words, err := h.wordService.List(ctx, userID)
		if err != nil {
			return err
		}
		return h.send(newMessage(chatID, formatWords(words)))
	}
}

func (h *Handler) handleDelete(userID int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		n, err := strconv.Atoi(strings.TrimSpace(args))
		if err != nil || n < 1 {
			return h.send(newPlainMessage(chatID, msgUseDelete))
		}

		words, err := h.wordService.List(ctx, userID)
		if err != nil {
			return err
		}
		if n > len(words) {
			return h.send(newPlainMessage(chatID, msgUseDelete))
		}

		w := words[n-1]
		if err := h.wordService.Delete(ctx, userID, w.ID); err != nil {
			return err
		}

		return h.send(newMessage(chatID, formatWordDeleted(w)))
	}
}

func (h *Handler) handleMatch(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		aq, err := h.matchingService.NewQuestion(ctx, userID)
		if err != nil {
			return err
		}

		msg := newMessage(chatID, formatQuestion(aq))
		msg.ReplyMarkup = buildMatchAnswerKeyboard(aq)
		return h.send(msg)
	}
}

func (h *Handler) handleProgress(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		summary, err := h.progressService.GetProgressSummary(ctx, userID)
		if err != nil {
			return err
		}

		msg := newMessage(chatID, formatProgress(summary))
		msg.ReplyMarkup = buildProgressKeyboard()
		return h.send(msg)
	}
}
