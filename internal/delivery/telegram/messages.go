// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/vocab-match-bot/internal/domain/entities"
	"github.com/aliskhannn/vocab-match-bot/internal/service"
	"github.com/aliskhannn/vocab-match-bot/internal/storage"
)

// Error messages.
const (
	msgNotEnoughWords   = "Add at least two words to start matching. Use /add word - translation."
	msgInvalidWordPair  = "Use: /add word - translation"
	msgEmptyWord        = "Both the word and its translation are required."
	msgDuplicateWord    = "This word is already in your dictionary."
	msgQuestionExpired  = "This question is no longer active. Use /match to get a new one."
	msgQuestionNotOwned = "This question belongs to someone else."
	msgInvalidChoice    = "Unknown choice, try again."
	msgWordNotFound     = "The word is not in your dictionary anymore."
	msgUseDelete        = "Use: /delete N, where N is the number from /words."
	msgEmptyDictionary  = "Your dictionary is empty. Add words with /add word - translation."
	msgInternalError    = "Something went wrong. Please try again later."
	msgUnknownCommand   = "Unknown command. See /help for the list of commands."
)

const progressBarLength = 10

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

func formatWelcome() string {
	var sb strings.Builder

	sb.WriteString(bold("Vocab Match Bot"))
	sb.WriteString(md(" helps you drill your own vocabulary."))
	sb.WriteString("\n\n")
	sb.WriteString(md("Add words to your dictionary, then match each word with its translation. "))
	sb.WriteString(md("Every answer updates the statistics of that word."))
	sb.WriteString("\n\n")
	sb.WriteString(formatHelp())

	return sb.String()
}

func formatHelp() string {
	lines := []string{
		"/add word - translation — add a word",
		"/words — list your dictionary",
		"/delete N — delete word number N",
		"/match — answer a matching question",
		"/progress — show your statistics",
	}

	var sb strings.Builder
	sb.WriteString(bold("Commands"))
	sb.WriteString("\n\n")
	for _, l := range lines {
		sb.WriteString(md(l))
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatQuestion shows the word being asked followed by the rendered choices.
func formatQuestion(aq *storage.ActiveQuestion) string {
	return fmt.Sprintf(
		"%s %s\n\n%s",
		md("🧩"),
		bold(aq.Target.Source),
		md(aq.Question.Render()),
	)
}

// formatAnswerFeedback formats feedback for an evaluated question (MarkdownV2 safe).
func formatAnswerFeedback(res *service.AnswerResult) string {
	target := res.Target
	pair := fmt.Sprintf("%s — %s", target.Source, target.Translation)

	var sb strings.Builder
	if res.Correct {
		sb.WriteString(md("✅ Correct!"))
		sb.WriteString("\n\n")
		sb.WriteString(bold(pair))
	} else {
		sb.WriteString(md("❌ Wrong"))
		sb.WriteString("\n\n")
		sb.WriteString(md("Correct answer: "))
		sb.WriteString(bold(pair))
	}

	p := res.Progress
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("Seen %d times, correct %d, streak %d.", p.Presented, p.Correct, p.Streak)))

	return sb.String()
}

func formatProgress(s *service.ProgressSummary) string {
	return fmt.Sprintf(
		"%s\n\n%s\n%s\n%s\n%s\n%s",
		bold("📊 Your progress"),
		md(fmt.Sprintf("Words: %d", s.Words)),
		md(fmt.Sprintf("Practised: %d %s", s.Practised, buildProgressBar(s.Practised, s.Words, progressBarLength))),
		md(fmt.Sprintf("Mastered: %d %s", s.Mastered, buildProgressBar(s.Mastered, s.Words, progressBarLength))),
		md(fmt.Sprintf("Answers: %d (correct %d)", s.Answers, s.Correct)),
		md(fmt.Sprintf("Accuracy: %.0f%%", s.Accuracy)),
	)
}

func formatWords(words []*entities.Word) string {
	if len(words) == 0 {
		return md(msgEmptyDictionary)
	}

	var sb strings.Builder
	sb.WriteString(bold("📖 Your dictionary"))
	sb.WriteString("\n\n")
	for i, w := range words {
		p := w.Progress()
		line := fmt.Sprintf("%d. %s — %s (%d/%d)", i+1, w.Source, w.Translation, p.Correct, p.Presented)
		sb.WriteString(md(line))
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatWordAdded(w *entities.Word) string {
	return md("Added: ") + bold(fmt.Sprintf("%s — %s", w.Source, w.Translation))
}

func formatWordDeleted(w *entities.Word) string {
	return md("Deleted: ") + bold(fmt.Sprintf("%s — %s", w.Source, w.Translation))
}

func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
	return fmt.Sprintf("[%s]", bar)
}

// userMessage maps an error to a message for the user. ok is false for unexpected errors.
func userMessage(err error) (msg string, ok bool) {
	switch {
	case errors.Is(err, service.ErrNotEnoughWords):
		return msgNotEnoughWords, true
	case errors.Is(err, service.ErrInvalidWordPair):
		return msgInvalidWordPair, true
	case errors.Is(err, service.ErrEmptyWord):
		return msgEmptyWord, true
	case errors.Is(err, entities.ErrDuplicateWord):
		return msgDuplicateWord, true
	case errors.Is(err, service.ErrQuestionNotFound), errors.Is(err, entities.ErrAlreadyEvaluated):
		return msgQuestionExpired, true
	case errors.Is(err, service.ErrQuestionNotOwned):
		return msgQuestionNotOwned, true
	case errors.Is(err, entities.ErrChoiceOutOfRange), errors.Is(err, errInvalidCallback):
		return msgInvalidChoice, true
	case errors.Is(err, entities.ErrWordNotFound):
		return msgWordNotFound, true
	default:
		return msgInternalError, false
	}
}
