package journal

import (
	"fmt"
	"time"
)

// Clock is a time of day with microsecond resolution.
type Clock struct {
	Hour, Minute, Second int
	Micro                int
}

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

// ClockOf returns the time-of-day part of t.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Micro: t.Nanosecond() / 1000}
}

// ParseClock accepts HH:MM:SS (with optional fractional seconds) or HH:MM.
func ParseClock(s string) (Clock, error) {
	for _, layout := range []string{ClockLayout, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockOf(t), nil
		}
	}
	return Clock{}, fmt.Errorf("invalid time of day %q", s)
}

// String renders HH:MM:SS, with a six digit fraction when Micro is set.
func (c Clock) String() string {
	if c.Micro != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%06d", c.Hour, c.Minute, c.Second, c.Micro)
	}
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// Before orders clocks within one day.
func (c Clock) Before(o Clock) bool {
	if c.Hour != o.Hour {
		return c.Hour < o.Hour
	}
	if c.Minute != o.Minute {
		return c.Minute < o.Minute
	}
	if c.Second != o.Second {
		return c.Second < o.Second
	}
	return c.Micro < o.Micro
}

// ParseDate parses a YYYY-MM-DD calendar date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
