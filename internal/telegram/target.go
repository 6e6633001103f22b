package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadTarget = errors.New("bad notify target")

// encodeTarget packs the originating chat and message into the opaque token
// the pomodoro service stores with a session.
func encodeTarget(chatID int64, messageID int) string {
	return strconv.FormatInt(chatID, 10) + ":" + strconv.Itoa(messageID)
}

func decodeTarget(s string) (chatID int64, messageID int, err error) {
	chat, msg, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTarget, s)
	}
	chatID, err = strconv.ParseInt(chat, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTarget, s)
	}
	messageID, err = strconv.Atoi(msg)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadTarget, s)
	}
	return chatID, messageID, nil
}
