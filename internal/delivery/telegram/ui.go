package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/vocab-match-bot/internal/storage"
)

// buildMatchAnswerKeyboard builds one button per choice in presentation order.
func buildMatchAnswerKeyboard(aq *storage.ActiveQuestion) tgbotapi.InlineKeyboardMarkup {
	q := aq.Question

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, w := range q.Choices() {
		label := fmt.Sprintf("%d. %s", i+1, w.DisplayText(q.Language()))
		button := tgbotapi.NewInlineKeyboardButtonData(label, buildMatchAnswerCallback(aq.ID, i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildMatchResultKeyboard builds keyboard shown after an answer.
func buildMatchResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ Next word", buildMatchNextCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 My progress", buildProgressCallback()),
		),
	)
}

// buildProgressKeyboard builds keyboard for progress screen.
func buildProgressKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧩 Match words", buildMatchNextCallback()),
		),
	)
}
