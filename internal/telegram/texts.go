package telegram

import (
	"fmt"
	"strings"

	"github.com/ykvlv/pomodoro-bot/internal/pomodoro"
)

// Reply texts. Chat clients match on these, keep them stable.
const (
	startedText        = "Pomodoro started!"
	alreadyStartedText = "Pomodoro already started"
	stoppedText        = "Pomodoro stopped!"
	notStartedText     = "You have not started a pomodoro"
	noneStartedText    = "There is no started a pomodoro"
	storeErrorText     = "Pomodoro storage is unavailable. Please try again later."

	remainingSelfFmt  = "There are still %d minutes in this pomodoro"
	remainingOtherFmt = "There are still %d minutes in %s's pomodoro"
	notStartedFmt     = "%s has not started a pomodoro"
	remainingLineFmt  = "There are still %d minutes remaining in %s's pomodoro"
)

// FormatAll renders the "all pomodoros?" answer, one line per session.
func FormatAll(list []pomodoro.Remaining) string {
	if len(list) == 0 {
		return noneStartedText
	}
	lines := make([]string, 0, len(list))
	for _, r := range list {
		lines = append(lines, fmt.Sprintf(remainingLineFmt, clampMinutes(r.Minutes), r.User))
	}
	return strings.Join(lines, "\n")
}

// clampMinutes hides negative figures of sessions the poller has not collected yet.
func clampMinutes(m int) int {
	if m < 0 {
		return 0
	}
	return m
}
