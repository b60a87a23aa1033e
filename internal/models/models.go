// Package models defines the documents focusquest persists
package models

import (
	"bytes"
	"encoding/json"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/focusquest/internal/progression"
)

const (
	PhaseFocus = "focus"
	PhaseBreak = "break"
)

const (
	// maxExp is the most exp a saved record may carry. Anything above it
	// cannot be reached from a valid level.
	maxExp = progression.MaxLevel * 100
	// maxCounter bounds the session and minute counters.
	maxCounter = math.MaxInt32
)

// Record is the persisted game state.
type Record struct {
	Level             int          `json:"level"`
	Exp               int          `json:"exp"`
	TotalSessions     int          `json:"totalSessions"`
	UnlockedLocations []int        `json:"unlockedLocations"`
	TodaySessions     int          `json:"todaySessions"`
	TodayMinutes      int          `json:"todayMinutes"`
	WeekSessions      int          `json:"weekSessions"`
	CurrentStreak     int          `json:"currentStreak"`
	Timer             *TimerRecord `json:"timer,omitempty"`
}

// TimerRecord is the countdown position saved when the app exits.
type TimerRecord struct {
	Phase             string `json:"phase"`
	RemainingSeconds  int    `json:"remainingSeconds"`
	SessionsCompleted int    `json:"sessionsCompleted"`
}

// Session is a completed focus session.
type Session struct {
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	ID        string        `json:"id"`
	Duration  time.Duration `json:"duration"`
	Exp       int           `json:"exp"`
	Level     int           `json:"level"`
}

// NewSession returns a completed session with a fresh ID.
func NewSession(start, end time.Time, exp, level int) *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
		Exp:       exp,
		Level:     level,
	}
}

// DefaultRecord returns the record used when nothing has been saved yet.
func DefaultRecord() Record {
	return Record{
		Level:             1,
		Exp:               0,
		TotalSessions:     0,
		UnlockedLocations: []int{progression.FirstLocationID},
		TodaySessions:     0,
		TodayMinutes:      0,
		WeekSessions:      0,
		CurrentStreak:     1,
	}
}

// Encode serialises the record.
func (r Record) Encode() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// DecodeRecord parses a saved record. Decoding never fails: every field that
// is missing, malformed, or out of range takes its default value
// independently of the others.
func DecodeRecord(b []byte) Record {
	r := DefaultRecord()

	var fields map[string]json.RawMessage

	if err := json.Unmarshal(b, &fields); err != nil {
		return r
	}

	decodeInt(fields, "level", &r.Level, 1, progression.MaxLevel)
	decodeInt(fields, "exp", &r.Exp, 0, maxExp)
	decodeInt(fields, "totalSessions", &r.TotalSessions, 0, maxCounter)
	decodeInt(fields, "todaySessions", &r.TodaySessions, 0, maxCounter)
	decodeInt(fields, "todayMinutes", &r.TodayMinutes, 0, maxCounter)
	decodeInt(fields, "weekSessions", &r.WeekSessions, 0, maxCounter)
	decodeInt(fields, "currentStreak", &r.CurrentStreak, 1, maxCounter)

	if ids, ok := decodeLocations(fields["unlockedLocations"]); ok {
		r.UnlockedLocations = ids
	}

	r.Timer = decodeTimer(fields["timer"])

	return r
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// decodeInt sets dst to the value under key if it is an integer within
// [minVal, maxVal].
func decodeInt(
	fields map[string]json.RawMessage,
	key string,
	dst *int,
	minVal, maxVal int,
) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return
	}

	var v int

	if err := json.Unmarshal(raw, &v); err != nil || v < minVal || v > maxVal {
		return
	}

	*dst = v
}

// decodeLocations keeps the valid, distinct IDs in their saved order and
// guarantees that the first location is present.
func decodeLocations(raw json.RawMessage) ([]int, bool) {
	if isNull(raw) {
		return nil, false
	}

	var saved []int

	if err := json.Unmarshal(raw, &saved); err != nil {
		return nil, false
	}

	ids := make([]int, 0, len(saved)+1)

	for _, id := range saved {
		if !progression.ValidLocationID(id) || slices.Contains(ids, id) {
			continue
		}

		ids = append(ids, id)
	}

	if !slices.Contains(ids, progression.FirstLocationID) {
		ids = append([]int{progression.FirstLocationID}, ids...)
	}

	return ids, true
}

func decodeTimer(raw json.RawMessage) *TimerRecord {
	if isNull(raw) {
		return nil
	}

	var t TimerRecord

	if err := json.Unmarshal(raw, &t); err != nil {
		return nil
	}

	if t.Phase != PhaseFocus && t.Phase != PhaseBreak {
		return nil
	}

	if t.RemainingSeconds < 0 || t.SessionsCompleted < 0 {
		return nil
	}

	return &t
}
