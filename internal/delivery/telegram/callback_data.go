package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Callback action constants.
const (
	actionMatch    = "match"
	actionProgress = "progress"
)

// Match sub-actions.
const (
	matchNext = "next"
)

var errInvalidCallback = errors.New("invalid callback data")

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildMatchAnswerCallback builds callback data for answering a matching question.
func buildMatchAnswerCallback(questionID uuid.UUID, index int) string {
	return callbackData{
		Action: actionMatch,
		Params: []string{questionID.String(), strconv.Itoa(index)},
	}.encode()
}

// buildMatchNextCallback builds callback data for asking the next question.
func buildMatchNextCallback() string {
	return callbackData{
		Action: actionMatch,
		Params: []string{matchNext},
	}.encode()
}

// buildProgressCallback builds callback data for opening the progress view.
func buildProgressCallback() string {
	return actionProgress
}

// parseMatchAnswer extracts question ID and choice index from match callback params.
func parseMatchAnswer(cd callbackData) (uuid.UUID, int, error) {
	if cd.Action != actionMatch || len(cd.Params) != 2 {
		return uuid.Nil, 0, errInvalidCallback
	}

	id, err := uuid.Parse(cd.Params[0])
	if err != nil {
		return uuid.Nil, 0, errInvalidCallback
	}

	index, err := strconv.Atoi(cd.Params[1])
	if err != nil || index < 0 {
		return uuid.Nil, 0, errInvalidCallback
	}

	return id, index, nil
}
