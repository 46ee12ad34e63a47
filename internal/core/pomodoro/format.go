package pomodoro

import (
	"fmt"
	"strings"
)

// FormatClock renders seconds as MM:SS; negative values render as 00:00.
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

// SessionDots shows progress towards the next long break; a long break shows a full row.
func SessionDots(completed, untilLong int, mode Mode) string {
	if untilLong <= 0 {
		return ""
	}
	filled := completed % untilLong
	if filled == 0 && completed > 0 && mode == ModeLongBreak {
		filled = untilLong
	}
	return strings.Repeat("●", filled) + strings.Repeat("○", untilLong-filled)
}
