package game

import (
	"fmt"
	"time"

	"github.com/ayoisaiah/focusquest/internal/progression"
)

const (
	levelUpDuration   = 5 * time.Second
	unlockDuration    = 3 * time.Second
	completedDuration = 3 * time.Second
	breakDuration     = 2 * time.Second
)

func msgLevelUp(level int) (string, string, time.Duration) {
	return "Level up!",
		fmt.Sprintf(
			"You are now %s level %d!",
			progression.RankFor(level).Title,
			level,
		),
		levelUpDuration
}

func msgLocationUnlocked(l progression.Location) (string, string, time.Duration) {
	return "New location unlocked!",
		fmt.Sprintf("%s %s awaits on the map", l.Emoji, l.Name),
		unlockDuration
}

func msgSessionComplete(exp int) (string, string, time.Duration) {
	return "Session complete",
		fmt.Sprintf("+%d EXP gained! Great work, ninja!", exp),
		completedDuration
}

func msgBreakStarted() (string, string, time.Duration) {
	return "Break time!", "Let your chakra recover...", breakDuration
}

func msgBreakEnded() (string, string, time.Duration) {
	return "Ready to continue!", "Onward to the next session!", breakDuration
}
